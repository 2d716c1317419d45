package mesh

// AssembleOptions configures Assemble.
type AssembleOptions struct {
	HAlign    HAlign
	VAlign    VAlign
	Transform Transform
	Weld      WeldPolicy
}

// DefaultAssembleOptions returns centered alignment, the identity transform
// and the default window weld.
func DefaultAssembleOptions() AssembleOptions {
	return AssembleOptions{
		HAlign:    AlignCenter,
		VAlign:    AlignMiddle,
		Transform: Identity(),
		Weld:      WindowWeld{Size: DefaultWeldWindow},
	}
}

// Assemble aligns, transforms and welds the accumulated triangles into a
// Result. The set is modified in place by alignment and transform.
func Assemble(set *TriangleSet, opts AssembleOptions) *Result {
	Align(set, opts.HAlign, opts.VAlign)

	// A zero Transform has zero scale; treat it as unset.
	tr := opts.Transform
	if tr == (Transform{}) {
		tr = Identity()
	}
	if !tr.IsIdentity() {
		set.Apply(tr)
	}

	res := &Result{}
	for _, f := range Faces {
		res.Channels[f] = Weld(set[f], opts.Weld)
	}
	res.CalcBounds()
	return res
}
