package roster

import (
	"testing"

	"github.com/gaurav-prasanna/rosterpipe/core"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const (
	origin     = "http://www.akleg.gov"
	bishopHref = "/basis/Member/Detail/33?code=BSH"
	bishopText = "Party: Republican\nDistrict: B\nCity: Juneau\nPhone: 907-465-3879"
)

func bishop(text string) core.Container {
	return core.Container{
		HTML:           "<strong>Click Bishop</strong>",
		Text:           text,
		HasProfileLink: true,
		ProfileHref:    bishopHref,
		ProfileText:    "Click Bishop",
	}
}

func TestBuild(t *testing.T) {
	rec, err := NewBuilder(origin).Build(bishop(bishopText))
	require.NoError(t, err)

	expected := core.Legislator{
		Name:     "Click Bishop",
		Title:    "Senator",
		Position: "District B",
		Party:    "Republican",
		Address:  "Juneau",
		Phone:    "907-465-3879",
		Email:    "",
		URL:      "http://www.akleg.gov/basis/Member/Detail/33?code=BSH",
	}
	if diff := cmp.Diff(expected, rec); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSenatePresident(t *testing.T) {
	rec, err := NewBuilder(origin).Build(bishop(bishopText + "\nSenate President"))
	require.NoError(t, err)
	require.Equal(t, "District B - Senate President", rec.Position)
}

func TestBuildTollFree(t *testing.T) {
	rec, err := NewBuilder(origin).Build(bishop(bishopText + "\nToll-Free: 800-555-1234"))
	require.NoError(t, err)
	require.Equal(t, "907-465-3879 / 800-555-1234 (Toll-Free)", rec.Phone)
}

func TestBuildCleansName(t *testing.T) {
	c := bishop(bishopText)
	c.ProfileText = "Click   Bishop\n Majority Leader"
	rec, err := NewBuilder(origin).Build(c)
	require.NoError(t, err)
	require.Equal(t, "Click Bishop", rec.Name)
}

func TestBuildAbsoluteHref(t *testing.T) {
	c := bishop(bishopText)
	c.ProfileHref = "https://www.akleg.gov/basis/Member/Detail/33?code=BSH"
	rec, err := NewBuilder(origin).Build(c)
	require.NoError(t, err)
	require.Equal(t, c.ProfileHref, rec.URL)
}

func TestBuildMalformedHref(t *testing.T) {
	c := bishop(bishopText)
	c.ProfileHref = "/basis/Member/Detail/%zz?code=BSH"
	rec, err := NewBuilder(origin).Build(c)
	require.NoError(t, err)
	require.Equal(t, "http://www.akleg.gov/basis/Member/Detail/%zz?code=BSH", rec.URL)
}

func TestBuildEmail(t *testing.T) {
	c := bishop(bishopText)
	c.HTML = `<a href="/cdn-cgi/l/email-protection#abc">[email&#160;protected]</a>`
	rec, err := NewBuilder(origin).Build(c)
	require.NoError(t, err)
	require.Equal(t, EmailAvailable, rec.Email)
}

func TestBuildCustomTitle(t *testing.T) {
	b := NewBuilder(origin)
	b.Title = "Representative"
	rec, err := b.Build(bishop(bishopText))
	require.NoError(t, err)
	require.Equal(t, "Representative", rec.Title)
}

func TestBuildSkips(t *testing.T) {
	b := NewBuilder(origin)

	noLink := bishop(bishopText)
	noLink.HasProfileLink = false
	_, err := b.Build(noLink)
	require.ErrorIs(t, err, ErrNoProfileLink)

	emptyHref := bishop(bishopText)
	emptyHref.ProfileHref = ""
	_, err = b.Build(emptyHref)
	require.ErrorIs(t, err, ErrNoProfileLink)

	for _, name := range []string{"", "  ", "Al", "President", "Senate President Jo"} {
		c := bishop(bishopText)
		c.ProfileText = name
		_, err = b.Build(c)
		require.ErrorIs(t, err, ErrNameTooShort, name)
	}
}

func TestCleanName(t *testing.T) {
	testCases := []struct {
		raw      string
		expected string
	}{
		{"Click Bishop", "Click Bishop"},
		{"  Click \n\t Bishop  ", "Click Bishop"},
		{"Click Bishop Majority Leader", "Click Bishop"},
		{"Lyman Hoffman Minority Leader", "Lyman Hoffman"},
		{"Gary Stevens Senate President", "Gary Stevens"},
		{"President Gary Stevens", "Gary Stevens"},
		{"Gary President Stevens", "Gary Stevens"},
		{"PresPresidentident Jo Smith", "Jo Smith"},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, CleanName(test.raw), test.raw)
	}
}

func TestCleanNameIdempotent(t *testing.T) {
	inputs := []string{
		"Click Bishop",
		"  Click   Bishop  ",
		"Click Bishop Majority Leader",
		"Gary President Stevens",
		"Senate PresidentPresident",
		"Majority Majority LeaderLeader Ann",
		"",
		"\t\n",
	}

	for _, in := range inputs {
		once := CleanName(in)
		require.Equal(t, once, CleanName(once), in)
	}
}

func TestComposePosition(t *testing.T) {
	testCases := []struct {
		district string
		text     string
		expected string
	}{
		{"B", "", "District B"},
		{"", "", ""},
		{"", "Majority Leader", "Majority Leader"},
		{"M", "Majority Leader", "District M - Majority Leader"},
		{"T", "Minority Leader", "District T - Minority Leader"},
		{"B", "Senate President", "District B - Senate President"},
		{"B", "Senate President and Majority Leader", "District B - Majority Leader"},
		{"B", "Minority Leader, Senate President", "District B - Minority Leader"},
		{"B", "majority leader", "District B"},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, ComposePosition(test.district, test.text), test.text)
	}
}

func TestComposePhone(t *testing.T) {
	testCases := []struct {
		phone    string
		tollFree string
		expected string
	}{
		{"907-465-3879", "800-555-1234", "907-465-3879 / 800-555-1234 (Toll-Free)"},
		{"", "800-555-1234", "800-555-1234 (Toll-Free)"},
		{"907-465-3879", "", "907-465-3879"},
		{"", "", ""},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, ComposePhone(test.phone, test.tollFree))
	}
}

func TestEmailIndicator(t *testing.T) {
	require.Equal(t, EmailAvailable, EmailIndicator(`<a class="__cf_email__" href="/cdn-cgi/l/email-protection">`, "", DefaultEmailMarker))
	require.Equal(t, EmailAvailable, EmailIndicator("", "EMAIL: see website", DefaultEmailMarker))
	require.Equal(t, EmailAvailable, EmailIndicator("", "Send an Email", ""))
	require.Equal(t, "", EmailIndicator("<p>Juneau</p>", "Juneau", DefaultEmailMarker))
	require.Equal(t, "", EmailIndicator("email-protection", "Juneau", ""))
}
