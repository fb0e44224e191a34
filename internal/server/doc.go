// Package server exposes scanning, relocation and directory listing over a
// small JSON HTTP API for browser front-ends.
//
// Routes:
//
//	POST /api/preview    {folderPath, deepScan}  -> {files}
//	POST /api/sort       {folderPath, files}     -> {results}
//	POST /api/list-dirs  {path}                  -> {currentPath, dirs, parentPath}
//	GET  /healthz                                -> ok
//
// Errors are returned as {"error": "..."} with status 400 for bad input and
// 500 otherwise. Per-file problems are never HTTP errors; they travel in the
// record status.
package server
