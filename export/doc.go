// Package export writes generated meshes to interchange formats: Wavefront
// OBJ (text, shared vertices, one group per channel) and binary STL
// (triangle soup with facet normals).
package export
