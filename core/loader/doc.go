// Package loader abstracts resource storage behind a small Loader interface
// with filesystem-backed (Dir) and bundled (FS) implementations.
//
// The interface is the dependency-injection point of the static serving
// pipeline: tests substitute a counting double, deployments can substitute a
// remote store (see integration/storage/s3). A missing resource is an
// expected outcome and is reported distinctly from I/O faults, so callers
// can map absence to 404 and faults to 5xx without inspecting error text.
//
//	fsys, _ := loader.NewDir("./public")
//	meta, err := fsys.Stat(ctx, "css/app.css")
//	if err != nil {
//		// storage fault, not a missing file
//	}
//	if !meta.Exists {
//		// 404
//	}
package loader
