// Package pathutil holds the path helpers shared across oaslint: route
// template normalization, JSON Pointer escaping, a pooled segment stack for
// document traversal, and output path sanitization for the CLI.
//
// Traversals track their position with a pooled [PathBuilder]:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.Push("paths")
//	path.Push("/pets")
//	path.PushIndex(0)
//	issuePath := path.Segments() // ["paths", "/pets", "0"]
//	ptr := path.Pointer()        // "#/paths/~1pets/0"
package pathutil
