package seed

import "testing"

func TestResolveExplicitWins(t *testing.T) {
	t.Setenv(EnvVar, "12345")

	if got := Resolve(99); got != 99 {
		t.Errorf("Resolve(99) = %d, explicit flag should win over env", got)
	}
}

func TestResolveFromEnv(t *testing.T) {
	t.Setenv(EnvVar, "18446744073709551615") // max uint64

	got := Resolve(0)
	if got != 18446744073709551615 {
		t.Errorf("Resolve(0) = %d, expected env value", got)
	}
}

func TestResolveMalformedEnvFallsBack(t *testing.T) {
	tests := []string{"not-a-number", "-1", "1.5", ""}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			t.Setenv(EnvVar, raw)

			if _, ok := FromEnv(); ok {
				t.Errorf("FromEnv() accepted malformed value %q", raw)
			}
			// Must never be fatal: Resolve falls back to the clock
			if Resolve(0) == 0 {
				t.Error("Resolve(0) with malformed env should return a clock seed")
			}
		})
	}
}

func TestFromClockNonZero(t *testing.T) {
	if FromClock() == 0 {
		t.Error("FromClock() returned zero")
	}
}
