package diff

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// randomPair builds two documents with an identical shape but independently
// random leaf values. Keys never hit the bookkeeping filter so the whole
// tree participates in the diff.
func randomPair(rng *rand.Rand, depth int) (*Object, *Object) {
	a := NewObject()
	b := NewObject()
	nKeys := 1 + rng.Intn(5)
	for i := 0; i < nKeys; i++ {
		key := "k" + strconv.Itoa(i)
		av, bv := randomLeafPair(rng, depth)
		a.Set(key, av)
		b.Set(key, bv)
	}
	return a, b
}

func randomLeafPair(rng *rand.Rand, depth int) (Value, Value) {
	kind := rng.Intn(6)
	if depth <= 0 && kind >= 4 {
		kind = rng.Intn(4)
	}
	switch kind {
	case 0:
		return Null(), randomScalar(rng)
	case 1:
		return Bool(rng.Intn(2) == 0), Bool(rng.Intn(2) == 0)
	case 2:
		return Number(float64(rng.Intn(1000))), Number(float64(rng.Intn(1000)))
	case 3:
		return String(randomWord(rng)), String(randomWord(rng))
	case 4:
		ao, bo := randomPair(rng, depth-1)
		return ObjectValue(ao), ObjectValue(bo)
	default:
		n := rng.Intn(4)
		aArr := make([]Value, n)
		bArr := make([]Value, n)
		for i := 0; i < n; i++ {
			aArr[i], bArr[i] = randomLeafPair(rng, depth-1)
		}
		return Array(aArr), Array(bArr)
	}
}

func randomScalar(rng *rand.Rand) Value {
	switch rng.Intn(4) {
	case 0:
		return Null()
	case 1:
		return Bool(true)
	case 2:
		return Number(float64(rng.Intn(100)))
	default:
		return String(randomWord(rng))
	}
}

var words = []string{"", "club", "weekly", "F102", "signup", "open house"}

func randomWord(rng *rand.Rand) string {
	return words[rng.Intn(len(words))]
}

// Applying every NewValue of Compare(A, B) to a copy of A reproduces B.
func TestCompareRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("apply(compare(a,b)) over a yields b", prop.ForAll(
		func(seed int64) bool {
			rng := rand.New(rand.NewSource(seed))
			a, b := randomPair(rng, 3)

			patched := a.Clone()
			for _, f := range Compare(a, b) {
				if err := Apply(patched, f.Key, f.NewValue); err != nil {
					return false
				}
			}
			return Equal(ObjectValue(patched), ObjectValue(b))
		},
		gen.Int64(),
	))

	properties.Property("compare(a,a) is empty", prop.ForAll(
		func(seed int64) bool {
			rng := rand.New(rand.NewSource(seed))
			a, _ := randomPair(rng, 3)
			return len(Compare(a, a)) == 0
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}
