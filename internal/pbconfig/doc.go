// Package pbconfig resolves the filesystem locations of the PropBank data set:
// the annotation index file, the treebank directory and the frame-definition
// directory. Every location is looked up by key in an injected Source at call
// time and falls back to a compiled-in default when no override is present.
package pbconfig
