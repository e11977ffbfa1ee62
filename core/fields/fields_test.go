package fields

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const bishopText = "Party: Republican\nDistrict: B\nCity: Juneau\nPhone: 907-465-3879"

func TestRules(t *testing.T) {
	require.Equal(t, "Republican", Party(bishopText))
	require.Equal(t, "B", District(bishopText))
	require.Equal(t, "Juneau", City(bishopText))
	require.Equal(t, "907-465-3879", Phone(bishopText))
	require.Equal(t, "", TollFree(bishopText))
}

func TestCityStopsAtNextLabel(t *testing.T) {
	testCases := []struct {
		text     string
		expected string
	}{
		{"City: Anchorage Party: Democrat", "Anchorage"},
		{"City: North Pole District: C Phone: 907-465-1", "North Pole"},
		{"City: Wasilla Phone: 907-465-3878", "Wasilla"},
		{"City:   Fairbanks  ", "Fairbanks"},
		{"City:\nPhone: 907-465-3878", ""},
		{"Phone: 907-465-3878", ""},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, City(test.text), test.text)
	}
}

func TestDistrictIsSingleUppercaseLetter(t *testing.T) {
	require.Equal(t, "N", District("District: NA"))
	require.Equal(t, "", District("District: b"))
	require.Equal(t, "", District("district: B"))
}

func TestTollFree(t *testing.T) {
	text := "Phone: 907-465-3879\nToll-Free: 800-555-1234"
	require.Equal(t, "907-465-3879", Phone(text))
	require.Equal(t, "800-555-1234", TollFree(text))
}

func TestExtractNeverFails(t *testing.T) {
	testCases := []struct {
		text    string
		pattern string
	}{
		{"", PartyPattern},
		{"Party: Republican", `Party:\s*(`},
		{"Party: Republican", `Party:\s*[A-Za-z]+`},
		{"Party: Republican", `(?<=Party:)\w+`},
		{"\x00\xff", CityPattern},
		{"Party: Republican", ""},
	}

	for _, test := range testCases {
		require.NotPanics(t, func() {
			require.Equal(t, "", Extract(test.text, test.pattern))
		})
	}
}

func TestExtractCustomPattern(t *testing.T) {
	require.Equal(t, "Independent", Extract("Affiliation: Independent", `Affiliation:\s*(\w+)`))
	require.Equal(t, "Sitka", Extract("Town: Sitka Phone: 1", `Town:\s*(.+)`))
}

func TestRulesApply(t *testing.T) {
	values := Rules{}.Apply(bishopText)
	require.Equal(t, Values{
		Party:    "Republican",
		District: "B",
		City:     "Juneau",
		Phone:    "907-465-3879",
	}, values)

	overridden := Rules{Party: `Caucus:\s*(\w+)`, Phone: `Phone:\s*(`}.Apply(bishopText + "\nCaucus: Bipartisan")
	require.Equal(t, "Bipartisan", overridden.Party)
	require.Equal(t, "", overridden.Phone)
	require.Equal(t, "Juneau", overridden.City)
}
