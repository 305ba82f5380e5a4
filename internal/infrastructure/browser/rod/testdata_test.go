package rod

const (
	BasicHTML = `<!DOCTYPE html>
<html>
<head><title>Test Page</title></head>
<body>
	<h1>Hello World</h1>
</body>
</html>`

	LinksHTML = `<!DOCTYPE html>
<html>
<body style="margin:0">
	<a id="one" href="/one" style="display:block;width:100px;height:20px">One</a>
	<a id="two" href="/two" style="display:block;width:100px;height:20px">Two</a>
	<a id="hidden" href="/hidden" style="display:none">Hidden</a>
	<div id="result"></div>
	<script>
		document.getElementById('one').addEventListener('click', function(e) {
			e.preventDefault();
			document.getElementById('result').textContent = 'one clicked';
		});
	</script>
</body>
</html>`

	FormHTML = `<!DOCTYPE html>
<html>
<body>
	<form id="testForm">
		<input id="username" type="text" name="username" />
		<input id="remember" type="checkbox" name="remember" />
		<select id="lang" name="lang">
			<option value="en">English</option>
			<option value="de">Deutsch</option>
		</select>
		<button id="submit" type="submit">Submit</button>
	</form>
</body>
</html>`

	FrameHTML = `<!DOCTYPE html>
<html>
<body style="margin:0">
	<a id="top" href="/top">Top</a>
	<iframe id="inner" style="position:absolute;left:100px;top:200px;width:300px;height:200px;border:0"
		srcdoc="<a id='framed' href='/framed'>Framed</a>"></iframe>
</body>
</html>`

	ScrollableHTML = `<!DOCTYPE html>
<html>
<body style="height: 5000px; margin:0">
	<h1 id="top">Top of Page</h1>
	<div style="margin-top: 2000px;" id="middle">Middle</div>
	<div style="margin-top: 2000px;" id="bottom">Bottom</div>
</body>
</html>`

	RadioHTML = `<!DOCTYPE html>
<html>
<body style="margin:0">
	<input id="r1" type="radio" name="color" value="red" checked style="display:block">
	<input id="r2" type="radio" name="color" value="blue" style="display:block">
	<input id="agree" type="checkbox" value="yes" style="display:block">
	<script>
		document.getElementById('r2').addEventListener('click', function() {
			document.getElementById('agree').checked = true;
		});
	</script>
</body>
</html>`
)
