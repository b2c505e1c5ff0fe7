package agent

import (
	"morris/game"
	"morris/meta"
	"morris/searcher"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// DefaultConfig is used if no configuration was given.
var DefaultConfig = "alphabeta:depth=3"

// New creates an agent from a configuration string.
//
// The config is the agent name followed by a colon (":") and a comma-separated
// list of key=value parameters, e.g. "alphabeta:depth=3,goroutines=2",
// "greedy:weights=tuned,seed=7" or "random:seed=1". Search agents are named by
// their algorithm and accept depth, goroutines and weights. Greedy agents accept
// weights and seed, random agents accept seed.
func New(config string) (Agent, error) {
	if strings.TrimSpace(config) == "" {
		config = DefaultConfig
	}

	name := config
	if split := strings.Index(config, ":"); split != -1 {
		name = config[:split]
		config = config[split+1:]
	} else {
		config = ""
	}
	name = strings.ToLower(strings.TrimSpace(name))
	params := splitConfigString(config)

	var a Agent
	var err error
	switch name {
	case "greedy":
		a, err = newGreedyFromParams(params)
	case "random":
		a, err = newRandomFromParams(params)
	default:
		algorithm, parseErr := searcher.ParseAlgorithm(name)
		if parseErr != nil {
			return nil, errors.Errorf("unknown agent %q", name)
		}
		a, err = newSearchFromParams(algorithm, params)
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create agent %q", name)
	}
	if len(params) > 0 {
		unknown := lo.Keys(params)
		sort.Strings(unknown)
		return nil, errors.Errorf("agent %q does not take parameters %s", name, strings.Join(unknown, ", "))
	}
	return a, nil
}

func newSearchFromParams(algorithm searcher.Algorithm, params map[string]string) (Agent, error) {
	depth, err := popParamOr(params, "depth", meta.DefaultDepth)
	if err != nil {
		return nil, err
	}
	if depth < 1 {
		return nil, errors.Wrapf(searcher.ErrInvalidDepth, "depth=%d", depth)
	}
	goroutines, err := popParamOr(params, "goroutines", 1)
	if err != nil {
		return nil, err
	}
	if goroutines < 1 {
		return nil, errors.Errorf("goroutines=%d must be at least 1", goroutines)
	}
	evaluate, err := popEvaluation(params)
	if err != nil {
		return nil, err
	}
	s := searcher.New(algorithm,
		searcher.WithDepth(depth),
		searcher.WithGoroutines(goroutines),
		searcher.WithEvaluationFn(evaluate),
		searcher.WithMetrics())
	return NewSearchAgent(s), nil
}

func newGreedyFromParams(params map[string]string) (Agent, error) {
	evaluate, err := popEvaluation(params)
	if err != nil {
		return nil, err
	}
	seed, err := popParamOr(params, "seed", 1)
	if err != nil {
		return nil, err
	}
	return NewGreedyAgent(evaluate, uint64(seed)), nil
}

func newRandomFromParams(params map[string]string) (Agent, error) {
	seed, err := popParamOr(params, "seed", 1)
	if err != nil {
		return nil, err
	}
	return NewRandomAgent(uint64(seed)), nil
}

// splitConfigString splits "k1=v1,k2=v2" into a map. A key without a value maps to "".
func splitConfigString(config string) map[string]string {
	params := make(map[string]string)
	for _, part := range strings.Split(config, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		subParts := strings.SplitN(part, "=", 2)
		if len(subParts) == 1 {
			params[subParts[0]] = ""
		} else {
			params[subParts[0]] = subParts[1]
		}
	}
	return params
}

// popParamOr parses and removes an int parameter, or returns defaultValue if it is absent.
func popParamOr(params map[string]string, key string, defaultValue int) (int, error) {
	value, exists := params[key]
	if !exists {
		return defaultValue, nil
	}
	delete(params, key)
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse configuration %s=%q to int", key, value)
	}
	return parsed, nil
}

func popEvaluation(params map[string]string) (game.Evaluate, error) {
	value, exists := params["weights"]
	if !exists {
		return game.EvaluateDefault, nil
	}
	delete(params, "weights")
	switch value {
	case "default", "":
		return game.EvaluateDefault, nil
	case "tuned":
		return game.EvaluateTuned, nil
	}
	return nil, errors.Errorf("unknown weights %q, want default or tuned", value)
}
