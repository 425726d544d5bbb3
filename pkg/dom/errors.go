package dom

import "errors"

// ErrInvalidCharacter is returned when a tag or attribute name contains
// characters that cannot appear in an HTML name.
var ErrInvalidCharacter = errors.New("dom: invalid character in name")

// ErrHierarchyRequest is returned when a mutation would produce an invalid
// tree, such as appending a node to one of its own descendants or adding
// children to a text node.
var ErrHierarchyRequest = errors.New("dom: hierarchy request error")
