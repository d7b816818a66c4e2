package utils

import "testing"

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Contrôle d'accès", "controle-d-acces"},
		{"Électricité générale", "electricite-generale"},
		{"Serrurerie & Métallerie", "serrurerie-metallerie"},
		{"  Portail   motorisé  ", "portail-motorise"},
		{"Œuvres d’art", "oeuvres-d-art"},
		{"déjà-un-slug", "deja-un-slug"},
		{"", ""},
	}

	for _, c := range cases {
		if got := GenerateSlug(c.in); got != c.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRemoveDiacritics(t *testing.T) {
	if got := RemoveDiacritics("çàéèêëîïôùûü"); got != "caeeeeiiouuu" {
		t.Errorf("RemoveDiacritics = %q", got)
	}
	if got := RemoveDiacritics("ŒÆ"); got != "OEAE" {
		t.Errorf("RemoveDiacritics ligatures = %q", got)
	}
}
