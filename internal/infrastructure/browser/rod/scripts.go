package rod

// In-page functions. Element scripts run with this bound to the element,
// page scripts with this bound to window.
const (
	snapshotJS = `() => {
	const el = this;
	const tag = el.tagName.toLowerCase();
	const r = el.getBoundingClientRect();
	const cs = el.ownerDocument.defaultView.getComputedStyle(el);
	const attrs = {};
	for (const a of el.attributes) attrs[a.name] = a.value;
	const ancestors = [];
	for (let p = el.parentElement; p; p = p.parentElement) ancestors.push(p.tagName.toLowerCase());
	const type = (tag === 'input' || tag === 'button') ? String(el.type || '').toLowerCase() : '';
	let url = '';
	if (typeof el.href === 'string' && el.href) url = el.href;
	else if (typeof el.src === 'string' && el.src) url = el.src;
	let selected = '';
	if (tag === 'select' && el.selectedIndex >= 0) selected = el.options[el.selectedIndex].text.trim();
	const editableTypes = ['', 'text', 'password', 'color', 'date', 'datetime', 'datetime-local',
		'email', 'month', 'number', 'search', 'tel', 'time', 'url', 'week'];
	const editable = el.isContentEditable || tag === 'textarea' ||
		(tag === 'input' && editableTypes.indexOf(type) >= 0);
	return {
		tag: tag,
		type: type,
		attrs: attrs,
		rect: {x: r.left, y: r.top, w: r.width, h: r.height},
		display: cs.display,
		visibility: cs.visibility,
		text: el.textContent || '',
		value: el.value === undefined || el.value === null ? '' : String(el.value),
		checked: !!el.checked,
		selected: selected,
		url: url,
		ancestors: ancestors,
		editable: editable,
		overlay: !!el.closest('[vimbhint="container"],[vimbhint="label"],[vimbhintstyle]'),
	};
}`

	// windowJS follows the offsets of pages that position their body
	// instead of scrolling the window.
	windowJS = `() => {
	const d = document, w = window;
	const body = d.body || d.documentElement;
	let x = w.scrollX, y = w.scrollY;
	if (body.style && /^(absolute|fixed|relative)$/.test(body.style.position)) {
		const r = body.getClientRects()[0];
		if (r) { x = -r.left; y = -r.top; }
	}
	return {w: w.innerWidth, h: w.innerHeight, x: x, y: y};
}`

	scrollMetricsJS = `() => {
	const de = document.documentElement, body = document.body;
	if (!de || !body) return {max: 0, percent: 0, top: 0};
	const top = Math.round(Math.max(de.scrollTop || 0, body.scrollTop || 0));
	const height = Math.max(de.scrollHeight || 0, body.scrollHeight || 0);
	const max = Math.round(height - (window.innerHeight || 0));
	if (max <= 0) return {max: max, percent: 0, top: 0};
	return {max: max, percent: Math.round(top * 100 / max), top: top};
}`

	scrollSizeJS = `() => {
	const de = document.documentElement, body = document.body || de;
	return {
		w: Math.max(de.scrollWidth || 0, body.scrollWidth || 0),
		h: Math.max(de.scrollHeight || 0, body.scrollHeight || 0),
	};
}`

	scrollByJS = `(x, y) => window.scrollBy(x, y)`
	scrollToJS = `(x, y) => window.scroll(x, y)`

	queryJS     = `(s) => document.querySelector(s)`
	byIDJS      = `(id) => document.getElementById(id)`
	activeJS    = `() => document.activeElement`
	fromPointJS = `(x, y) => document.elementFromPoint(x, y)`

	frameAccessibleJS = `() => {
	try {
		const d = this.contentDocument;
		return !!(d && d.documentElement);
	} catch (e) {
		return false;
	}
}`

	containsJS = `(other) => this.contains(other)`
	focusJS    = `() => this.focus()`
	checkedJS  = `() => !!this.checked`

	dispatchJS = `(type, ctrl) => {
	const view = this.ownerDocument.defaultView;
	const ev = new view.MouseEvent(type, {bubbles: true, cancelable: true, view: view, ctrlKey: ctrl});
	this.dispatchEvent(ev);
}`

	markerAttrJS  = `(name, value, on) => on ? this.setAttribute(name, value) : this.removeAttribute(name)`
	markerClassJS = `(name, on) => this.classList.toggle(name, on)`

	clearMarkersJS = `(attr, classes) => {
	this.removeAttribute(attr);
	for (const c of classes) this.classList.remove(c);
}`

	setAttrJS     = `(name, value) => this.setAttribute(name, value)`
	removeAttrJS  = `(name) => this.removeAttribute(name)`
	setDisabledJS = `(v) => { this.disabled = v; }`
	setCheckedJS  = `(v) => { this.checked = v; }`
	setValueJS    = `(v) => { this.value = v; }`

	// commitJS injects the style sheet once per document and appends the
	// container with all labels in one go.
	commitJS = `(css, styleAttr, containerID, labelClass, markerAttr, labels) => {
	const d = document;
	if (!d.body) return null;
	if (!d.querySelector('style[' + styleAttr + ']')) {
		const st = d.createElement('style');
		st.setAttribute(styleAttr, '1');
		st.textContent = css;
		(d.head || d.documentElement).appendChild(st);
	}
	const c = d.createElement('div');
	c.id = containerID;
	c.setAttribute(markerAttr, 'container');
	for (const l of labels) {
		const s = d.createElement('span');
		s.className = labelClass;
		s.setAttribute(markerAttr, 'label');
		s.style.cssText = l.style;
		c.appendChild(s);
	}
	d.body.appendChild(c);
	return c;
}`

	labelShowJS = `(i, text, style) => {
	const l = this.children[i];
	l.textContent = text;
	l.style.cssText = style;
}`

	labelHideJS  = `(i, style) => { this.children[i].style.cssText = style; }`
	labelFocusJS = `(i, cls, on) => this.children[i].classList.toggle(cls, on)`
)
