package di

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hintkit/internal/infrastructure/config"
	"hintkit/internal/infrastructure/logger"
)

func TestNewContainer_StaticPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(`<html data-viewport="800,600"><body data-rect="0,0,800,600">
<a href="next.html" data-rect="10,10,50,20">Next</a>
</body></html>`), 0o600))

	c, err := newContainer(context.Background(), Config{
		Settings: config.Default(),
		HTMLFile: path,
	}, logger.NewNop())
	require.NoError(t, err)
	defer c.Close()

	assert.Nil(t, c.Browser)
	require.NotNil(t, c.DOM)

	result, err := c.Dispatcher.Dispatch(context.Background(), "init y")
	require.NoError(t, err)
	assert.Equal(t, "DATA:file://"+filepath.ToSlash(filepath.Dir(path))+"/next.html", result, "a single hint fires at once")
}

func TestNewContainer_MissingFile(t *testing.T) {
	_, err := newContainer(context.Background(), Config{
		Settings: config.Default(),
		HTMLFile: filepath.Join(t.TempDir(), "missing.html"),
	}, logger.NewNop())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
