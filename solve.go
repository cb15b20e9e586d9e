package dmc

import "github.com/chewxy/math32"

// solveQefs walks the vertex stack top-down: every top-layer cluster solves
// its merged QEF, and only recurses into its children when the resulting
// error exceeds threshold. Each cluster's QEF is solved at most once,
// enforced by Qef.Solve's own sentinel check.
func solveQefs(stack []Layer, threshold float32) int {
	if len(stack) == 0 {
		return 0
	}
	top := len(stack) - 1
	solved := 0
	for i := range stack[top] {
		solved += recursivelySolveQef(stack, threshold, top, i)
	}
	return solved
}

func recursivelySolveQef(stack []Layer, threshold float32, layerIdx, vertexIdx int) int {
	v := &stack[layerIdx][vertexIdx]
	v.Qef.Solve()
	solved := 1
	if math32.Abs(v.Qef.Error) > threshold && layerIdx > 0 {
		for _, childIdx := range v.Children {
			solved += recursivelySolveQef(stack, threshold, layerIdx-1, childIdx)
		}
	}
	return solved
}
