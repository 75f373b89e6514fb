// Package dfs walks a core.Graph depth-first along edge direction.
//
// What:
//
//   - Routes enumerates every route from a source to a target by brute
//     force. It is the reference the ranking tests compare against, so it
//     shares no code with the eppstein package.
//   - FindCycle reports one directed cycle, if any. A cycle reachable from
//     the source and able to reach the target makes the number of routes
//     unbounded; Routes refuses such graphs with ErrCycleDetected.
//
// Visitation uses the classic three colours: White (unseen), Gray (on the
// current recursion stack) and Black (finished). An edge into a Gray vertex
// is a back edge and closes a cycle.
//
// Negative edges are skipped, like everywhere else in this module.
//
// Complexity:
//
//   - Routes:    Time O(R·L + V + E) for R routes of average length L,
//     Memory O(V) besides the output.
//   - FindCycle: Time O(V + E), Memory O(V).
//
// Errors:
//
//   - ErrGraphNil        graph pointer is nil
//   - ErrVertexNotFound  source or target label not in graph
//   - ErrCycleDetected   Routes met a cycle that lies on a route
//   - ErrTooManyRoutes   Routes exceeded WithMaxRoutes
//   - context.Canceled   walk canceled via WithContext
package dfs
