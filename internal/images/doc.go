// Package images resolves catalog image identifiers to local files and lays
// them out for the terminal.
//
// The catalog only carries an identifier per artist and work. A Resolver maps
// that identifier to an Image (dimensions read from the file header, or a
// placeholder when nothing is found), Zoom computes the expanded layout used
// by the work screen, and Render draws the framed stand-in the UI shows.
package images
