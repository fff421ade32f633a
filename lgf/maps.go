package lgf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/tolerance"
)

// ArcMap parses the arc column name into values of V.
func ArcMap[V tolerance.Value](doc *Document, name string) (*core.ArcMap[V], error) {
	col, ok := doc.ArcMaps[name]
	if !ok {
		return nil, fmt.Errorf("%w: arc map %q", ErrMissingMap, name)
	}
	values, err := parseColumn[V](name, col)
	if err != nil {
		return nil, err
	}

	return core.ArcMapOf(values), nil
}

// NodeMap parses the node column name into values of V.
func NodeMap[V tolerance.Value](doc *Document, name string) ([]V, error) {
	col, ok := doc.NodeMaps[name]
	if !ok {
		return nil, fmt.Errorf("%w: node map %q", ErrMissingMap, name)
	}

	return parseColumn[V](name, col)
}

// SetArcMap formats m into the arc column name.
func SetArcMap[V tolerance.Value](doc *Document, name string, m core.ArcReader[V]) error {
	values := make([]string, doc.Graph.ArcCount())
	for a := range values {
		values[a] = FormatValue(m.At(core.Arc(a)))
	}

	return doc.SetArcColumn(name, values)
}

func parseColumn[V tolerance.Value](name string, col []string) ([]V, error) {
	values := make([]V, len(col))
	for i, s := range col {
		v, err := ParseValue[V](s)
		if err != nil {
			return nil, fmt.Errorf("lgf: map %q entry %d: %w", name, i, err)
		}
		values[i] = v
	}

	return values, nil
}

// ParseValue parses s as V. "inf", "+inf" and "infinity" (any case) yield
// tolerance.Infinity. Integers that do not fit V are rejected.
func ParseValue[V tolerance.Value](s string) (V, error) {
	switch strings.ToLower(s) {
	case "inf", "+inf", "infinity", "+infinity":
		return tolerance.Infinity[V](), nil
	}

	if tolerance.IsFloat[V]() {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrValue, s)
		}
		return V(f), nil
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		v := V(i)
		if int64(v) != i || (i < 0) != (v < 0) {
			return 0, fmt.Errorf("%w: %q out of range", ErrValue, s)
		}
		return v, nil
	}
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrValue, s)
	}
	v := V(u)
	if uint64(v) != u {
		return 0, fmt.Errorf("%w: %q out of range", ErrValue, s)
	}

	return v, nil
}

// FormatValue renders v so that ParseValue reads it back. The infinity
// sentinel of V is written as "inf".
func FormatValue[V tolerance.Value](v V) string {
	if tolerance.Default[V]().IsInfinite(v) {
		return "inf"
	}
	if tolerance.IsFloat[V]() {
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	}
	if v < 0 {
		return strconv.FormatInt(int64(v), 10)
	}

	return strconv.FormatUint(uint64(v), 10)
}
