package quote

import "testing"

func TestComputePrice(t *testing.T) {
	subtotal, profit, total := ComputePrice(1000, 200, 300, 20)
	if subtotal != 1500 {
		t.Fatalf("subtotal = %v, want 1500", subtotal)
	}
	if profit != 300 {
		t.Fatalf("profit = %v, want 300", profit)
	}
	if total != 1800 {
		t.Fatalf("total = %v, want 1800", total)
	}
}

func TestComputePriceZeroMargin(t *testing.T) {
	subtotal, profit, total := ComputePrice(100, 50, 25, 0)
	if subtotal != 175 || profit != 0 || total != 175 {
		t.Fatalf("got %v/%v/%v, want 175/0/175", subtotal, profit, total)
	}
}

func TestComputePriceZeroCosts(t *testing.T) {
	subtotal, profit, total := ComputePrice(0, 0, 0, 20)
	if subtotal != 0 || profit != 0 || total != 0 {
		t.Fatalf("got %v/%v/%v, want all zero", subtotal, profit, total)
	}
}
