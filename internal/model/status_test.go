package model

import "testing"

func TestFetchStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   FetchStatus
		expected bool
	}{
		{FetchStatusIdle, false},
		{FetchStatusFetching, true},
		{FetchStatus(""), false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("FetchStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestFetchStatus_String(t *testing.T) {
	status := FetchStatusFetching
	expected := "Fetching"
	result := status.String()

	if result != expected {
		t.Errorf("FetchStatus.String() = %s, expected %s", result, expected)
	}
}

func TestSeverity_String(t *testing.T) {
	if SeverityWarning.String() != "warning" {
		t.Errorf("Severity.String() = %s, expected warning", SeverityWarning.String())
	}
}
