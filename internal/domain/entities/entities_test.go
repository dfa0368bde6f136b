package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coordkeeper/core/internal/domain/entities"
)

func TestParseNumber(t *testing.T) {
	t.Run("plain integer is integral", func(t *testing.T) {
		n, err := entities.ParseNumber("100")
		require.NoError(t, err)
		assert.True(t, n.IsIntegral())
		assert.Equal(t, int64(100), n.Int64())
	})

	t.Run("negative integer is integral", func(t *testing.T) {
		n, err := entities.ParseNumber("-200")
		require.NoError(t, err)
		assert.True(t, n.IsIntegral())
		assert.Equal(t, int64(-200), n.Int64())
	})

	t.Run("decimal is fractional", func(t *testing.T) {
		n, err := entities.ParseNumber("1.5")
		require.NoError(t, err)
		assert.False(t, n.IsIntegral())
		assert.Equal(t, 1.5, n.Float64())
	})

	t.Run("whole decimal stays fractional", func(t *testing.T) {
		n, err := entities.ParseNumber("2.0")
		require.NoError(t, err)
		assert.False(t, n.IsIntegral())
		assert.Equal(t, 2.0, n.Float64())
	})

	t.Run("exponent form is fractional", func(t *testing.T) {
		n, err := entities.ParseNumber("1e3")
		require.NoError(t, err)
		assert.False(t, n.IsIntegral())
		assert.Equal(t, 1000.0, n.Float64())
	})

	t.Run("surrounding whitespace is tolerated", func(t *testing.T) {
		n, err := entities.ParseNumber(" 42 ")
		require.NoError(t, err)
		assert.True(t, n.IsIntegral())
		assert.Equal(t, int64(42), n.Int64())
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		for _, input := range []string{"abc", "", "--5", "1.2.3", "12x", "-"} {
			_, err := entities.ParseNumber(input)
			assert.ErrorIs(t, err, entities.ErrInvalidNumber, "input %q", input)
		}
	})

	t.Run("non-finite values are rejected", func(t *testing.T) {
		for _, input := range []string{"inf", "-Inf", "NaN"} {
			_, err := entities.ParseNumber(input)
			assert.ErrorIs(t, err, entities.ErrInvalidNumber, "input %q", input)
		}
	})
}

func TestNumberJSON(t *testing.T) {
	t.Run("integral value stays an integer token", func(t *testing.T) {
		data, err := json.Marshal(entities.IntNumber(100))
		require.NoError(t, err)
		assert.Equal(t, "100", string(data))
	})

	t.Run("fractional value keeps its decimal point", func(t *testing.T) {
		data, err := json.Marshal(entities.FloatNumber(1.5))
		require.NoError(t, err)
		assert.Equal(t, "1.5", string(data))
	})

	t.Run("whole fractional value keeps its decimal point", func(t *testing.T) {
		n, err := entities.ParseNumber("2.0")
		require.NoError(t, err)

		data, err := json.Marshal(n)
		require.NoError(t, err)
		assert.Equal(t, "2.0", string(data))

		var decoded entities.Number
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.False(t, decoded.IsIntegral())
		assert.Equal(t, n, decoded)
	})

	t.Run("unmarshal infers the kind from the token", func(t *testing.T) {
		var n entities.Number
		require.NoError(t, json.Unmarshal([]byte("64"), &n))
		assert.True(t, n.IsIntegral())

		require.NoError(t, json.Unmarshal([]byte("-0.5"), &n))
		assert.False(t, n.IsIntegral())
		assert.Equal(t, -0.5, n.Float64())
	})

	t.Run("unmarshal rejects non-number tokens", func(t *testing.T) {
		var n entities.Number
		assert.Error(t, json.Unmarshal([]byte(`"abc"`), &n))
		assert.Error(t, json.Unmarshal([]byte(`null`), &n))
	})

	t.Run("round trip preserves the kind", func(t *testing.T) {
		original := entities.Coordinate{
			Name: "Base",
			X:    entities.IntNumber(100),
			Y:    entities.FloatNumber(64.5),
			Z:    entities.IntNumber(-200),
		}

		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded entities.Coordinate
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, original, decoded)
	})
}

func TestCoordinateText(t *testing.T) {
	coord := entities.Coordinate{
		Name: "Nether portal",
		X:    entities.IntNumber(100),
		Y:    entities.IntNumber(64),
		Z:    entities.FloatNumber(-200.5),
	}
	assert.Equal(t, "Nether portal: x=100 y=64 z=-200.5", coord.Text())

	coord.Z = entities.FloatNumber(2)
	assert.Equal(t, "Nether portal: x=100 y=64 z=2.0", coord.Text())
}

func TestProfileCoordinateOps(t *testing.T) {
	newProfile := func() *entities.Profile {
		p := entities.NewProfile()
		p.AddCoordinate(entities.Coordinate{Name: "a", X: entities.IntNumber(1)})
		p.AddCoordinate(entities.Coordinate{Name: "b", X: entities.IntNumber(2)})
		p.AddCoordinate(entities.Coordinate{Name: "c", X: entities.IntNumber(3)})
		return p
	}

	t.Run("delete shifts later indices down", func(t *testing.T) {
		p := newProfile()
		require.NoError(t, p.RemoveCoordinate(1))
		require.Len(t, p.Coords, 2)
		assert.Equal(t, "a", p.Coords[0].Name)
		assert.Equal(t, "c", p.Coords[1].Name)
	})

	t.Run("out of range index is rejected", func(t *testing.T) {
		p := newProfile()
		assert.ErrorIs(t, p.RemoveCoordinate(5), entities.ErrIndexOutOfRange)
		assert.ErrorIs(t, p.RemoveCoordinate(-1), entities.ErrIndexOutOfRange)
		_, err := p.CoordinateAt(3)
		assert.ErrorIs(t, err, entities.ErrIndexOutOfRange)
	})

	t.Run("replace overwrites in place", func(t *testing.T) {
		p := newProfile()
		require.NoError(t, p.ReplaceCoordinate(0, entities.Coordinate{Name: "z"}))
		assert.Equal(t, "z", p.Coords[0].Name)
		assert.Len(t, p.Coords, 3)
	})
}

func TestDatasetNames(t *testing.T) {
	d := entities.NewDataset()
	d["beta"] = entities.NewProfile()
	d["Alpha"] = entities.NewProfile()
	d["gamma"] = entities.NewProfile()

	assert.Equal(t, []string{"Alpha", "beta", "gamma"}, d.Names())
}

func TestDatasetMerge(t *testing.T) {
	existing := entities.NewDataset()
	existing["p"] = &entities.Profile{Seed: "old", Coords: []entities.Coordinate{}}
	existing["q"] = &entities.Profile{Seed: "keep", Coords: []entities.Coordinate{}}

	imported := entities.NewDataset()
	imported["p"] = &entities.Profile{Seed: "new", Coords: []entities.Coordinate{}}

	existing.Merge(imported)

	assert.Equal(t, "new", existing["p"].Seed)
	assert.Equal(t, "keep", existing["q"].Seed)
}

func TestDatasetNormalize(t *testing.T) {
	d := entities.Dataset{
		"null-profile": nil,
		"nil-coords":   {Seed: "s"},
	}

	d.Normalize()

	require.NotNil(t, d["null-profile"])
	assert.Equal(t, []entities.Coordinate{}, d["null-profile"].Coords)
	assert.Equal(t, []entities.Coordinate{}, d["nil-coords"].Coords)
}

func TestDatasetClone(t *testing.T) {
	d := entities.NewDataset()
	d["p"] = &entities.Profile{
		Seed:   "s",
		Coords: []entities.Coordinate{{Name: "a", X: entities.IntNumber(1)}},
	}

	clone := d.Clone()
	clone["p"].Seed = "changed"
	clone["p"].Coords[0].Name = "changed"

	assert.Equal(t, "s", d["p"].Seed)
	assert.Equal(t, "a", d["p"].Coords[0].Name)
}
