package wiki

import (
	"strings"
	"testing"

	"github.com/avelar/tibiasearch/internal/imbuement"
)

func TestArticleURL(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Demon Horn", BaseURL + "Demon_Horn"},
		{"  Fiery Heart ", BaseURL + "Fiery_Heart"},
		{"Lion's Mane", BaseURL + "Lion%27s_Mane"},
		{"Mooh'tah Shell", BaseURL + "Mooh%27tah_Shell"},
		{"Warmaster's Wristguards", BaseURL + "Warmaster%27s_Wristguards"},
	}
	for _, tc := range cases {
		if got := ArticleURL(tc.title); got != tc.want {
			t.Errorf("ArticleURL(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestArticleURLsForAllMaterials(t *testing.T) {
	for _, name := range imbuement.Materials() {
		url := ArticleURL(name)
		if !strings.HasPrefix(url, BaseURL) {
			t.Errorf("%q: unexpected prefix in %q", name, url)
		}
		if strings.Contains(url, "Special:Search") {
			t.Errorf("%q resolves to the search page", name)
		}
		if strings.Contains(url, "+") || strings.Contains(url, " ") {
			t.Errorf("%q: spaces leaked into %q", name, url)
		}
	}
}

func TestSearchURL(t *testing.T) {
	got := SearchURL("demon horn")
	if got != SearchPageURL+"?query=demon+horn" {
		t.Errorf("SearchURL = %q", got)
	}
}
