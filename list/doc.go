// Package list
// Author: momentics <momentics@gmail.com>
//
// Generic doubly-linked list with single-owner node chain.
// Each node is owned by its predecessor's next link (the list head for the
// first node); prev links are back-references used only for traversal.
//
// A List is not safe for concurrent use. Lists must not be copied; build a
// copy explicitly with PushBack over All().
package list
