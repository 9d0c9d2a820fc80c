package worktime

import "testing"

func TestConvert(t *testing.T) {
	cases := map[string]string{
		"9:00 AM to 5:00 PM":  "09:00 to 17:00",
		"9 AM to 5 PM":        "09:00 to 17:00",
		"9:00 AM to 5 PM":     "09:00 to 17:00",
		"9 AM to 5:00 PM":     "09:00 to 17:00",
		"12 AM to 12 PM":      "00:00 to 12:00",
		"12:30 PM to 1:15 AM": "12:30 to 01:15",
		"10 PM to 8 AM":       "22:00 to 08:00",
	}
	for input, want := range cases {
		got, err := Convert(input)
		if err != nil {
			t.Fatalf("Convert(%q) returned error: %v", input, err)
		}
		if got != want {
			t.Errorf("Convert(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestConvertRejectsBadInput(t *testing.T) {
	invalid := []string{
		"cat",
		"9 AM - 5 PM",
		"09:00 to 17:00",
		"12:60 AM to 11:60 PM",
		"13:15 AM to 14:15 PM",
		"0 AM to 5 PM",
		"1315 AM to 5 AM",
		"9 AM to 5 PM and 6 PM",
	}
	for _, input := range invalid {
		if got, err := Convert(input); err == nil {
			t.Errorf("Convert(%q) = %q, want error", input, got)
		}
	}
}
