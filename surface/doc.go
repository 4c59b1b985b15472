// Package surface models the rendered content of one notebook line.
//
// A line's editable content is a tree of Nodes (text leaves and structural
// elements) rooted at the line element itself. Hosts expose that tree through
// the Surface capability: read and write raw markup, and read and set a native
// anchor/focus selection expressed as Points inside the tree.
//
// Memory is a headless Surface with host-native editing. Offsets inside text
// nodes are grapheme offsets.
package surface
