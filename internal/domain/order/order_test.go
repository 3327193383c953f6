package order

import "testing"

func TestValidTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{StatusReceived, StatusPreparing},
		{StatusReceived, StatusCanceled},
		{StatusPreparing, StatusReady},
		{StatusPreparing, StatusOnRoute},
		{StatusPreparing, StatusCanceled},
		{StatusReady, StatusDelivered},
		{StatusReady, StatusCanceled},
		{StatusOnRoute, StatusDelivered},
		{StatusOnRoute, StatusCanceled},
	}
	for _, tt := range allowed {
		if !ValidTransition(tt.from, tt.to) {
			t.Errorf("%s -> %s should be allowed", tt.from, tt.to)
		}
	}

	denied := []struct{ from, to string }{
		{StatusReceived, StatusDelivered},
		{StatusReceived, StatusReceived},
		{StatusPreparing, StatusReceived},
		{StatusReady, StatusPreparing},
		{StatusDelivered, StatusCanceled},
		{StatusCanceled, StatusPreparing},
		{"BOGUS", StatusPreparing},
	}
	for _, tt := range denied {
		if ValidTransition(tt.from, tt.to) {
			t.Errorf("%s -> %s should be rejected", tt.from, tt.to)
		}
	}
}
