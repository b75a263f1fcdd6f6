package builder

// Method tags double as ByName keys and error prefixes.
const (
	methodPath         = "path"
	methodStar         = "star"
	methodCycle        = "cycle"
	methodWheel        = "wheel"
	methodComplete     = "complete"
	methodGrid         = "grid"
	methodBipartite    = "bipartite"
	methodRandomSparse = "random"
)

// Topology minima.
const (
	minPathNodes      = 2
	minStarNodes      = 2
	minCycleNodes     = 3
	minWheelNodes     = 4
	minCompleteNodes  = 1
	minGridDim        = 1
	minPartitionSize  = 1
	minRandomVertices = 1
	probMin           = 0.0
	probMax           = 1.0
)

// Names lists every topology ByName accepts.
func Names() []string {
	return []string{
		methodPath, methodStar, methodCycle, methodWheel,
		methodComplete, methodGrid, methodBipartite, methodRandomSparse,
	}
}
