// Package pathfind searches an occupancy grid for the shortest route between
// two cells.
//
// # Strategies
//
// A [Strategy] turns a grid and two cells into a [Result]. The default,
// [NewAStarDiagonal], moves in eight directions with orthogonal steps
// costing 1 and diagonal steps √2, guided by the octile heuristic. A diagonal
// step is allowed when at least one of the two orthogonally adjacent cells
// is free, so routes may graze a blocked corner but never pass between two
// blocked cells. [NewAStarOrthogonal] restricts moves to the four compass
// directions with a Manhattan heuristic.
//
// Both searches are deterministic: open cells are ordered by f-score and
// then by the order in which they were discovered, and neighbors are
// generated in the fixed order N, NE, E, SE, S, SW, W, NW.
//
// # Simplification
//
// [Simplify] keeps only the cells where the direction of travel changes,
// plus both endpoints. The result traces the same polyline as the full path
// with far fewer vertices.
package pathfind
