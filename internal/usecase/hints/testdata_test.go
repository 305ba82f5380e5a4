package hints

// Fixture pages. Geometry comes from data-rect="x,y,w,h"; the window is
// sized by data-viewport on <html>.
const (
	LinksHTML = `<!DOCTYPE html>
<html data-viewport="800,600">
<body data-rect="0,0,800,600">
	<a id="one" href="/one" data-rect="10,10,50,20">One link</a>
	<a id="two" href="/two" data-rect="10,40,50,20">Two link</a>
	<a id="three" href="/three" data-rect="10,70,50,20">Three</a>
	<a id="hidden" href="/hidden" style="display:none" data-rect="10,100,50,20">Hidden</a>
</body>
</html>`

	FormHTML = `<!DOCTYPE html>
<html data-viewport="800,600">
<body data-rect="0,0,800,600">
	<input id="cb" type="checkbox" data-rect="10,10,20,20">
	<input id="txt" type="text" value="hello" data-rect="10,40,100,20">
	<input id="secret" type="hidden" value="x" data-rect="10,70,100,20">
	<input id="off" type="text" disabled data-rect="10,100,100,20">
</body>
</html>`

	RadioHTML = `<!DOCTYPE html>
<html data-viewport="800,600">
<body data-rect="0,0,800,600">
	<input id="r1" type="radio" name="g" value="red" checked data-rect="10,10,20,20">
	<input id="r2" type="radio" name="g" value="blue" data-rect="10,40,20,20">
</body>
</html>`

	FrameHTML = `<!DOCTYPE html>
<html data-viewport="800,600">
<body data-rect="0,0,800,600">
	<a id="top" href="/top" data-rect="10,10,50,20">Top</a>
	<iframe id="inner" data-rect="100,500,300,200" srcdoc="<html><body data-rect='0,0,300,400'><a id='in' href='/in' data-rect='10,10,50,20'>Inside</a><a id='part' href='/part' data-rect='10,90,50,20'>Part</a><a id='clipped' href='/clipped' data-rect='10,150,50,20'>Clipped</a></body></html>"></iframe>
	<iframe id="foreign" src="http://other.example/" data-rect="500,10,200,200"></iframe>
</body>
</html>`

	CoveredHTML = `<!DOCTYPE html>
<html data-viewport="800,600">
<body data-rect="0,0,800,600">
	<a id="covered" href="/covered" data-rect="10,10,50,20">Covered</a>
	<div id="cover" data-rect="0,0,200,100"></div>
	<a id="free" href="/free" data-rect="10,200,50,20">Free</a>
</body>
</html>`

	WrapperHTML = `<!DOCTYPE html>
<html data-viewport="800,600">
<body data-rect="0,0,800,600">
	<a id="wrap" href="/wrap" data-rect="10,10,0,0"><span data-rect="10,10,40,20">Floated</span></a>
	<a id="empty" href="/empty" data-rect="10,40,0,0"></a>
	<a id="off" href="/off" data-rect="10,900,50,20">Below the fold</a>
</body>
</html>`

	ScrolledHTML = `<!DOCTYPE html>
<html data-viewport="800,600" data-scroll="0,100">
<body data-rect="0,-100,800,1600">
	<a id="gone" href="/gone" data-rect="10,-50,50,20">Gone</a>
	<a id="partial" href="/partial" data-rect="10,-10,50,20">Partial</a>
</body>
</html>`

	ImagesHTML = `<!DOCTYPE html>
<html data-viewport="800,600">
<body data-rect="0,0,800,600">
	<a id="pic" href="/gallery" data-rect="10,10,60,60"><img src="/thumb.png" alt="A very long alternative text for the thumbnail" data-rect="10,10,60,60"></a>
	<img id="free" src="/free.png" title="Free image" data-rect="100,10,60,60">
	<iframe id="embed" src="/embed" data-rect="200,10,100,100"></iframe>
</body>
</html>`

	TwelveLinksHTML = `<!DOCTYPE html>
<html data-viewport="800,600">
<body data-rect="0,0,800,600">
	<a id="l1" href="/l1" data-rect="10,25,50,20">Link 1</a>
	<a id="l2" href="/l2" data-rect="10,50,50,20">Link 2</a>
	<a id="l3" href="/l3" data-rect="10,75,50,20">Link 3</a>
	<a id="l4" href="/l4" data-rect="10,100,50,20">Link 4</a>
	<a id="l5" href="/l5" data-rect="10,125,50,20">Link 5</a>
	<a id="l6" href="/l6" data-rect="10,150,50,20">Link 6</a>
	<a id="l7" href="/l7" data-rect="10,175,50,20">Link 7</a>
	<a id="l8" href="/l8" data-rect="10,200,50,20">Link 8</a>
	<a id="l9" href="/l9" data-rect="10,225,50,20">Link 9</a>
	<a id="l10" href="/l10" data-rect="10,250,50,20">Link 10</a>
	<a id="l11" href="/l11" data-rect="10,275,50,20">Link 11</a>
	<a id="l12" href="/l12" data-rect="10,300,50,20">Link 12</a>
</body>
</html>`
)
