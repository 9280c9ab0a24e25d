package slug

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Web Design", "web-design"},
		{"Création de sites web", "creation-de-sites-web"},
		{"  Stratégie & Média  ", "strategie-media"},
		{"Hello---World!!!", "hello-world"},
		{"déjà vu", "deja-vu"},
		{"UPPER Case", "upper-case"},
		{"", ""},
		{"---", ""},
		{"2024 en revue", "2024-en-revue"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	titles := []string{
		"Web Design", "Création de sites web", "déjà---vu", "Agence Jawa: l'équipe",
	}
	for _, title := range titles {
		once := Slugify(title)
		if twice := Slugify(once); twice != once {
			t.Errorf("Slugify not idempotent for %q: %q != %q", title, twice, once)
		}
	}
}

func TestAssign(t *testing.T) {
	if got := Assign("Mon Titre", ""); got != "mon-titre" {
		t.Errorf("Assign without override = %q, want %q", got, "mon-titre")
	}
	if got := Assign("Mon Titre", "Slug Choisi"); got != "slug-choisi" {
		t.Errorf("Assign with override = %q, want %q", got, "slug-choisi")
	}
	if got := Assign("Mon Titre", "   "); got != "mon-titre" {
		t.Errorf("Assign with blank override = %q, want %q", got, "mon-titre")
	}
}
