// Package webpack resolves front-end bundles from the stats file written by
// webpack-bundle-tracker.
//
// A Registry is built once at start-up and hands out one Loader per
// configured app. Loaders read the stats file from disk or object storage,
// optionally cache it, wait for in-progress compilations, and turn bundle
// chunks into URLs, <script>/<link> tags or static asset paths.
//
// Both stats layouts are understood: the legacy one where each bundle lists
// chunk objects, and the current one where bundles list file names that are
// described under "assets".
package webpack
