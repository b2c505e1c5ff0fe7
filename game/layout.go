package game

// Cells are numbered row by row across the three nested squares:
//
//	0-----1-----2
//	| 3---4---5 |
//	| | 6-7-8 | |
//	9-10-11 12-13-14
//	| | 15-16-17 |
//	| 18--19--20 |
//	21----22----23
var Adjacency = [CellCount][]int{
	0: {1, 9}, 1: {0, 2, 4}, 2: {1, 14},
	3: {4, 10}, 4: {1, 3, 5, 7}, 5: {4, 13},
	6: {7, 11}, 7: {4, 6, 8}, 8: {7, 12},
	9: {0, 10, 21}, 10: {3, 9, 11, 18}, 11: {6, 10, 15},
	12: {8, 13, 17}, 13: {5, 12, 14, 20}, 14: {2, 13, 23},
	15: {11, 16}, 16: {15, 17, 19}, 17: {12, 16},
	18: {10, 19}, 19: {16, 18, 20, 22}, 20: {13, 19},
	21: {9, 22}, 22: {19, 21, 23}, 23: {14, 22},
}

type Mill [3]int

var Mills = [16]Mill{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{9, 10, 11}, {12, 13, 14}, {15, 16, 17},
	{18, 19, 20}, {21, 22, 23},
	{0, 9, 21}, {3, 10, 18}, {6, 11, 15},
	{1, 4, 7}, {16, 19, 22}, {8, 12, 17},
	{5, 13, 20}, {2, 14, 23},
}

// millsByCell lists the indexes into Mills that contain each cell.
var millsByCell = func() [CellCount][]int {
	var byCell [CellCount][]int
	for i, mill := range Mills {
		for _, cell := range mill {
			byCell[cell] = append(byCell[cell], i)
		}
	}
	return byCell
}()

func (m Mill) Contains(cell int) bool {
	return m[0] == cell || m[1] == cell || m[2] == cell
}

func validCell(cell int) bool {
	return cell >= 0 && cell < CellCount
}

func adjacent(from, to int) bool {
	for _, n := range Adjacency[from] {
		if n == to {
			return true
		}
	}
	return false
}
