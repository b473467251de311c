package diagram

import "strings"

// Kind represents diagram family
type Kind string

const (
	KindFeature   Kind = "Feature"
	KindUseCase   Kind = "UseCase"
	KindClass     Kind = "Class"
	KindComponent Kind = "Component"
	KindSequence  Kind = "Sequence"
	KindActivity  Kind = "Activity"
)

// Kinds lists diagram kinds in their ordering position
var Kinds = []Kind{KindFeature, KindUseCase, KindClass, KindComponent, KindSequence, KindActivity}

// ParseKind matches kind case-insensitively, unknown values yield empty kind
func ParseKind(value string) Kind {
	value = strings.TrimSpace(value)
	for _, kind := range Kinds {
		if strings.EqualFold(string(kind), value) {
			return kind
		}
	}
	return ""
}

// Order returns kind sorting position
func (k Kind) Order() int {
	for i, kind := range Kinds {
		if kind == k {
			return i
		}
	}
	return len(Kinds)
}

// IsValid returns true for kinds listed in Kinds
func (k Kind) IsValid() bool {
	return k.Order() < len(Kinds)
}

// IsFeature returns true for feature diagrams
func (k Kind) IsFeature() bool {
	return k == KindFeature
}
