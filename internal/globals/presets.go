package globals

// Default returns the ECMAScript built-ins present in every JavaScript
// environment, all of them read-only. Grounded on the "global
// identifiers that should exist in all JavaScript environments" section
// of evanw/esbuild's internal/config.knownGlobals, generalized from
// esbuild's dotted-property list (which exists to avoid renaming
// property accesses on these objects) down to just the top-level names
// a reference to, which is all a Use_Of_Undeclared_Variable check needs.
func Default() *Set {
	s := NewSet()
	s.addReadonly(
		"Array", "ArrayBuffer", "Boolean", "DataView", "Date", "Error",
		"EvalError", "Float32Array", "Float64Array", "Function",
		"Infinity", "Int8Array", "Int16Array", "Int32Array", "Intl",
		"JSON", "Map", "Math", "NaN", "Number", "Object", "Promise",
		"Proxy", "RangeError", "ReferenceError", "Reflect", "RegExp",
		"Set", "String", "Symbol", "SyntaxError", "TypeError",
		"Uint8Array", "Uint8ClampedArray", "Uint16Array", "Uint32Array",
		"URIError", "WeakMap", "WeakSet", "WeakRef", "FinalizationRegistry",
		"BigInt", "BigInt64Array", "BigUint64Array", "globalThis",
		"undefined", "decodeURI", "decodeURIComponent", "encodeURI",
		"encodeURIComponent", "eval", "isFinite", "isNaN", "parseFloat",
		"parseInt",
	)
	return s
}

// Browser returns Default() extended with the DOM/BOM globals a script
// running in a web page sees: window, document, the timer functions,
// fetch, and so on.
func Browser() *Set {
	s := Default()
	s.addWritable(
		"window", "document", "navigator", "location", "history",
		"localStorage", "sessionStorage", "console",
	)
	s.addReadonly(
		"self", "top", "parent", "frames", "name", "screen",
		"setTimeout", "clearTimeout", "setInterval", "clearInterval",
		"fetch", "XMLHttpRequest", "Headers", "Request", "Response",
		"URL", "URLSearchParams", "Event", "EventTarget", "CustomEvent",
		"HTMLElement", "Element", "Node", "alert", "confirm", "prompt",
		"requestAnimationFrame", "cancelAnimationFrame",
		"addEventListener", "removeEventListener", "dispatchEvent",
		"atob", "btoa", "performance", "crypto",
	)
	return s
}

// Node returns Default() extended with the CommonJS module globals and
// core globals the Node.js runtime injects into every module.
func Node() *Set {
	s := Default()
	s.addWritable("module", "exports", "global")
	s.addReadonly(
		"require", "__dirname", "__filename", "process", "Buffer",
		"setImmediate", "clearImmediate", "setTimeout", "clearTimeout",
		"setInterval", "clearInterval", "console", "queueMicrotask",
		"TextEncoder", "TextDecoder", "URL", "URLSearchParams",
	)
	return s
}

// WebWorker returns Default() extended with the subset of worker-global
// APIs (no DOM): self, postMessage, importScripts, and the same timer
// functions browsers expose.
func WebWorker() *Set {
	s := Default()
	s.addReadonly(
		"self", "postMessage", "onmessage", "importScripts", "close",
		"setTimeout", "clearTimeout", "setInterval", "clearInterval",
		"fetch", "XMLHttpRequest", "console", "performance", "crypto",
	)
	return s
}

// Jasmine returns Default() extended with the Jasmine test-framework
// globals test files reference without an explicit import.
func Jasmine() *Set {
	s := Default()
	s.addReadonly(
		"describe", "xdescribe", "fdescribe", "it", "xit", "fit",
		"beforeEach", "afterEach", "beforeAll", "afterAll", "expect",
		"spyOn", "spyOnProperty", "jasmine", "fail", "pending",
	)
	return s
}

// Jest returns Jasmine()'s globals extended with jest-specific additions
// (Jest's API is a superset of Jasmine's for this purpose).
func Jest() *Set {
	s := Jasmine()
	s.addReadonly("jest", "test", "xtest", "beforeEach", "test.each", "describe.each")
	return s
}

// ByName resolves a preset by its CLI/config name
// ("default"/"browser"/"node"/"web-worker"/"jasmine"/"jest"), returning
// nil and false for an unrecognized name.
func ByName(name string) (*Set, bool) {
	switch name {
	case "default":
		return Default(), true
	case "browser":
		return Browser(), true
	case "node":
		return Node(), true
	case "web-worker":
		return WebWorker(), true
	case "jasmine":
		return Jasmine(), true
	case "jest":
		return Jest(), true
	default:
		return nil, false
	}
}
