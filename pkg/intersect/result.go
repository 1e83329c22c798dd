package intersect

import (
	"fmt"
	"strings"

	"github.com/cfoust/segint/pkg/geom"

	opt "github.com/repeale/fp-go/option"
)

// Kind classifies how two segments relate to each other.
type Kind uint8

const (
	// The segments meet at exactly one point.
	KindIntersection Kind = iota
	// The four endpoints do not share a plane.
	KindNonCoplanar
	// Parallel directions on distinct lines.
	KindParallel
	// Same line, no shared point.
	KindCollinearNoOverlap
	// Same line, shared interval of positive length.
	KindOverlapping
	// Coplanar and not parallel, but the crossing lies outside a segment.
	KindNoIntersection
)

var kindNames = []string{
	"INTERSECTION",
	"NONCOPLANAR",
	"PARALLEL",
	"COLLINEARNOOVERLAP",
	"OVERLAPPING",
	"NOINTERSECTION",
}

var kindMessages = []string{
	"segments intersect at a single point",
	"segments are not coplanar",
	"segments are parallel",
	"segments are collinear but do not overlap",
	"segments overlap along an interval",
	"segments do not intersect",
}

var Kinds = []Kind{
	KindIntersection,
	KindNonCoplanar,
	KindParallel,
	KindCollinearNoOverlap,
	KindOverlapping,
	KindNoIntersection,
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

func (k Kind) Message() string {
	if int(k) < len(kindMessages) {
		return kindMessages[k]
	}
	return k.String()
}

func ParseKind(name string) (Kind, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, kindName := range kindNames {
		if kindName == upper {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown intersection kind %q", name)
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Result is the outcome of Intersection. Point is only set for
// KindIntersection.
type Result struct {
	Kind  Kind
	Point opt.Option[geom.Vector]
}

func pointResult(point geom.Vector) Result {
	return Result{
		Kind:  KindIntersection,
		Point: opt.Some(point),
	}
}

func kindResult(kind Kind) Result {
	return Result{
		Kind:  kind,
		Point: opt.None[geom.Vector](),
	}
}

func (r Result) HasPoint() bool {
	return opt.IsSome(r.Point)
}

func (r Result) String() string {
	if r.HasPoint() {
		return fmt.Sprintf("%s %v", r.Kind, r.Point.Value)
	}
	return r.Kind.String()
}

// NoPointError describes a result without a single intersection point.
type NoPointError struct {
	Kind Kind
}

func (e *NoPointError) Error() string {
	return fmt.Sprintf("no single intersection point: %s", e.Kind.Message())
}

// Err returns nil when the segments meet at one point and a *NoPointError
// otherwise.
func (r Result) Err() error {
	if r.HasPoint() {
		return nil
	}
	return &NoPointError{Kind: r.Kind}
}
