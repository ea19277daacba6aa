package stocktracker

import "testing"

func TestUser_SetProperty(t *testing.T) {
	testCases := []struct {
		property string
		value    string
		get      func(u User) string
	}{
		{"un", "alicia", func(u User) string { return u.Username }},
		{"Username", "alicia", func(u User) string { return u.Username }},
		{"fn", "Alice", func(u User) string { return u.FirstName }},
		{"first-name", "Alice", func(u User) string { return u.FirstName }},
		{"ln", "Liddell", func(u User) string { return u.LastName }},
		{"LAST-NAME", "Liddell", func(u User) string { return u.LastName }},
		{"mi", "P", func(u User) string { return u.MiddleInitial }},
		{"middle-initial", "P", func(u User) string { return u.MiddleInitial }},
	}
	for _, tc := range testCases {
		t.Run(tc.property, func(t *testing.T) {
			u := NewUser("alice")
			if err := u.SetProperty(tc.property, tc.value); err != nil {
				t.Fatalf("SetProperty(%q, %q) failed: %v", tc.property, tc.value, err)
			}
			if got := tc.get(u); got != tc.value {
				t.Errorf("property %q = %q, want %q", tc.property, got, tc.value)
			}
		})
	}

	u := NewUser("alice")
	if err := u.SetProperty("shoe-size", "42"); !HasKind(err, InvalidInput) {
		t.Errorf("unknown property: got %v, want InvalidInput", err)
	}
}

func TestUser_Buy(t *testing.T) {
	stock := NewStock("FOO")
	u := NewUser("alice")

	t.Run("first purchase creates the unit", func(t *testing.T) {
		if err := u.Buy(stock, 5); err != nil {
			t.Fatalf("Buy failed: %v", err)
		}
		unit, ok := u.Portfolio["FOO"]
		if !ok {
			t.Fatal("no unit for FOO")
		}
		if unit.Quantity != 5 {
			t.Errorf("quantity = %d, want 5", unit.Quantity)
		}
		if unit.Stock.Ticker != "FOO" {
			t.Errorf("unit snapshot ticker = %q, want FOO", unit.Stock.Ticker)
		}
	})

	t.Run("later purchases accumulate", func(t *testing.T) {
		if err := u.Buy(stock, 3); err != nil {
			t.Fatalf("Buy failed: %v", err)
		}
		if len(u.Portfolio) != 1 {
			t.Fatalf("portfolio has %d entries, want 1", len(u.Portfolio))
		}
		if got := u.Portfolio["FOO"].Quantity; got != 8 {
			t.Errorf("quantity = %d, want 8", got)
		}
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		if err := u.Buy(stock, 0); !HasKind(err, InvalidInput) {
			t.Errorf("got %v, want InvalidInput", err)
		}
		if got := u.Portfolio["FOO"].Quantity; got != 8 {
			t.Errorf("failed buy changed quantity to %d", got)
		}
	})
}

func TestUser_String(t *testing.T) {
	u := User{FirstName: "Alice", LastName: "Liddell"}
	if got, want := u.String(), "Alice Liddell"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
