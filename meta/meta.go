package meta

// DefaultDepth is the game-tree search depth in plies.
const DefaultDepth = 3

// DefaultBudget caps node expansions of a pathfinding query.
const DefaultBudget = 100

// MaxTurns ends a self-play game as a draw.
const MaxTurns = 300

// RepetitionLimit ends a self-play game as a draw once a position recurs this often.
const RepetitionLimit = 3

const Goroutines = 4

const Games = 1
