package mesh

// blockIVertexData is the "I" logo as a triangle list.  The first 30
// vertices are the solid block, the rest its outline.
var blockIVertexData = []float32{
	// block
	-0.6, 0.9, 0.0,
	-0.6, 0.6, 0.0,
	-0.2, 0.6, 0.0,
	-0.6, 0.9, 0.0,
	-0.2, 0.6, 0.0,
	0.6, 0.9, 0.0,
	-0.2, 0.6, 0.0,
	0.2, 0.6, 0.0,
	0.6, 0.9, 0.0,
	-0.2, 0.6, 0.0,
	-0.2, -0.6, 0.0,
	0.2, -0.6, 0.0,
	-0.2, 0.6, 0.0,
	0.2, 0.6, 0.0,
	0.2, -0.6, 0.0,
	-0.2, -0.6, 0.0,
	-0.6, -0.6, 0.0,
	-0.6, -0.9, 0.0,
	0.6, -0.9, 0.0,
	0.6, -0.6, 0.0,
	0.2, -0.6, 0.0,
	0.2, 0.6, 0.0,
	0.6, 0.6, 0.0,
	0.6, 0.9, 0.0,
	-0.6, -0.9, 0.0,
	-0.2, -0.6, 0.0,
	0.6, -0.9, 0.0,
	-0.2, -0.6, 0.0,
	0.2, -0.6, 0.0,
	0.6, -0.9, 0.0,

	// outline
	-0.7, 1.0, 0.0,
	-0.6, 0.9, 0.0,
	-0.7, 0.9, 0.0,
	-0.7, 1.0, 0.0,
	0.7, 1.0, 0.0,
	-0.6, 0.9, 0.0,
	-0.6, 0.9, 0.0,
	0.7, 0.9, 0.0,
	0.7, 1.0, 0.0,
	0.7, 1.0, 0.0,
	0.7, 0.9, 0.0,
	0.6, 0.9, 0.0,
	-0.7, 0.9, 0.0,
	-0.7, 0.6, 0.0,
	-0.6, 0.6, 0.0,
	-0.7, 0.9, 0.0,
	-0.6, 0.9, 0.0,
	-0.6, 0.6, 0.0,
	-0.7, 0.6, 0.0,
	-0.7, 0.5, 0.0,
	-0.6, 0.6, 0.0,
	-0.7, 0.5, 0.0,
	-0.6, 0.6, 0.0,
	-0.6, 0.5, 0.0,
	-0.6, 0.5, 0.0,
	-0.6, 0.6, 0.0,
	-0.2, 0.6, 0.0,
	-0.6, 0.5, 0.0,
	-0.2, 0.6, 0.0,
	-0.2, 0.5, 0.0,
	-0.3, 0.5, 0.0,
	-0.3, -0.6, 0.0,
	-0.2, -0.6, 0.0,
	-0.3, 0.5, 0.0,
	-0.2, 0.5, 0.0,
	-0.2, -0.6, 0.0,
	-0.3, -0.5, 0.0,
	-0.3, -0.6, 0.0,
	-0.7, -0.5, 0.0,
	-0.3, -0.6, 0.0,
	-0.7, -0.6, 0.0,
	-0.7, -0.5, 0.0,
	-0.7, -0.6, 0.0,
	-0.7, -1.0, 0.0,
	-0.6, -1.0, 0.0,
	-0.7, -0.6, 0.0,
	-0.6, -0.6, 0.0,
	-0.6, -1.0, 0.0,
	-0.6, -1.0, 0.0,
	-0.6, -0.9, 0.0,
	0.7, -0.9, 0.0,
	-0.6, -1.0, 0.0,
	0.7, -1.0, 0.0,
	0.7, -0.9, 0.0,
	0.7, -0.9, 0.0,
	0.6, -0.9, 0.0,
	0.7, -0.5, 0.0,
	0.7, -0.5, 0.0,
	0.6, -0.5, 0.0,
	0.6, -0.9, 0.0,
	0.6, -0.5, 0.0,
	0.6, -0.6, 0.0,
	0.2, -0.6, 0.0,
	0.6, -0.5, 0.0,
	0.2, -0.5, 0.0,
	0.2, -0.6, 0.0,
	0.2, -0.5, 0.0,
	0.3, -0.5, 0.0,
	0.2, 0.6, 0.0,
	0.2, 0.6, 0.0,
	0.3, 0.6, 0.0,
	0.3, -0.5, 0.0,
	0.3, 0.6, 0.0,
	0.7, 0.5, 0.0,
	0.3, 0.5, 0.0,
	0.3, 0.6, 0.0,
	0.7, 0.6, 0.0,
	0.7, 0.5, 0.0,
	0.7, 0.6, 0.0,
	0.7, 0.9, 0.0,
	0.6, 0.6, 0.0,
	0.6, 0.6, 0.0,
	0.7, 0.9, 0.0,
	0.6, 0.9, 0.0,
}

// customVertexData is three spikes meeting at the origin.
var customVertexData = []float32{
	0.0, 0.0, 0.0,
	-0.3, 1.0, 0.0,
	0.3, 1.0, 0.0,
	0.0, 0.0, 0.0,
	-0.3, -1.0, 0.0,
	-0.5, -0.8, 0.0,
	0.0, 0.0, 0.0,
	0.3, -1.0, 0.0,
	0.5, -0.8, 0.0,
}

const (
	blockIVertexCount = 114
	blockIFillCount   = 30
	customVertexCount = 9
)
