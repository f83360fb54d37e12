// Package navigation implements the admin navigation tree.
//
// Contributors assemble a tree of Items, merging their entries by name with
// Find and FindChildren. Once assembly is done the tree is frozen into a Node
// and serialized with ToArray into the payload the admin UI renders.
package navigation
