package countries_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/countrykit/pkg/countries"
)

const fixtureAll = `[
	{"cca3":"AGO","name":{"common":"Angola","official":"Republic of Angola"},"region":"Africa","population":33000000,"capital":["Luanda"]},
	{"cca3":"AND","name":{"common":"Andorra","official":"Principality of Andorra"},"region":"Europe","population":77000,"capital":["Andorra la Vella"],
	 "languages":{"cat":"Catalan"},"currencies":{"EUR":{"name":"Euro","symbol":"€"}}}
]`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/all", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fixtureAll))
	})
	mux.HandleFunc("/name/and", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fixtureAll))
	})
	mux.HandleFunc("/name/zzz", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/region/Europe", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"cca3":"AND","name":{"common":"Andorra"},"region":"Europe","population":77000}]`))
	})
	mux.HandleFunc("/region/Atlantis", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	mux.HandleFunc("/alpha/AND", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"cca3":"AND","name":{"common":"Andorra"},"region":"Europe","population":77000,
			"maps":{"googleMaps":"https://goo.gl/maps/x"},"flags":{"png":"https://flags/and.png"}}]`))
	})
	mux.HandleFunc("/alpha/XXX", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T) *countries.Client {
	t.Helper()
	srv := newTestServer(t)
	return countries.NewClient(countries.WithBaseURL(srv.URL))
}

func TestClientAll(t *testing.T) {
	client := newTestClient(t)

	all, err := client.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Equal(t, "AGO", all[0].Code)
	assert.Equal(t, "Angola", all[0].Name.Common)
	assert.Equal(t, int64(33000000), all[0].Population)
	assert.Equal(t, []string{"Luanda"}, all[0].Capital)
	assert.Equal(t, "Catalan", all[1].Languages["cat"])
	assert.Equal(t, "€", all[1].Currencies["EUR"].Symbol)
}

func TestClientByName(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	t.Run("matches", func(t *testing.T) {
		got, err := client.ByName(ctx, "and")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("no match is empty not error", func(t *testing.T) {
		got, err := client.ByName(ctx, "zzz")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("blank name rejected locally", func(t *testing.T) {
		_, err := client.ByName(ctx, "  ")
		assert.ErrorIs(t, err, countries.ErrEmptyArgument)
	})
}

func TestClientByRegion(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	t.Run("narrowed region", func(t *testing.T) {
		got, err := client.ByRegion(ctx, "Europe")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Andorra", got[0].Name.Common)
	})

	t.Run("All falls back to full listing", func(t *testing.T) {
		got, err := client.ByRegion(ctx, countries.RegionAll)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("service failure normalized", func(t *testing.T) {
		_, err := client.ByRegion(ctx, "Atlantis")
		assert.ErrorIs(t, err, countries.ErrFetchFailed)
	})
}

func TestClientByCode(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	t.Run("unwraps single element", func(t *testing.T) {
		got, err := client.ByCode(ctx, "AND")
		require.NoError(t, err)
		assert.Equal(t, "Andorra", got.Name.Common)
		assert.Equal(t, "https://goo.gl/maps/x", got.Maps.GoogleMaps)
		assert.Equal(t, "https://flags/and.png", got.Flags.PNG)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := client.ByCode(ctx, "XXX")
		assert.ErrorIs(t, err, countries.ErrNotFound)
	})
}

func TestClientTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := countries.NewClient(countries.WithBaseURL(srv.URL))
	_, err := client.All(context.Background())
	assert.ErrorIs(t, err, countries.ErrFetchFailed)
}

func TestRegions(t *testing.T) {
	records := []countries.Country{
		{Region: "Europe"},
		{Region: "Africa"},
		{Region: "Europe"},
		{Region: ""},
	}

	assert.Equal(t, []string{"All", "Africa", "Europe"}, countries.Regions(records))
	assert.Equal(t, []string{"All"}, countries.Regions(nil))
}

func TestLanguages(t *testing.T) {
	records := []countries.Country{
		{Languages: map[string]string{"cat": "Catalan", "por": "Portuguese"}},
		{Languages: map[string]string{"por": "Portuguese"}},
	}

	assert.Equal(t, []string{"Catalan", "Portuguese"}, countries.Languages(records))
}
