package rangeset

import (
	"strconv"
	"testing"
)

func BenchmarkTreeRangeSet_AddDisjoint(b *testing.B) {
	for _, n := range []int{1e3, 1e4, 5e4} {
		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			ranges := make([]Range[int], n)
			for i := range n {
				ranges[i], _ = ClosedOpenOrdered(i*10, i*10+5)
			}
			b.ResetTimer()
			for b.Loop() {
				s := NewOrdered[int]()
				for _, r := range ranges {
					_ = s.Add(r)
				}
			}
		})
	}
}

func BenchmarkTreeRangeSet_AddCoalescing(b *testing.B) {
	for _, n := range []int{1e3, 1e4, 5e4} {
		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			ranges := make([]Range[int], n)
			for i := range n {
				ranges[i], _ = ClosedOpenOrdered(i, i+1)
			}
			b.ResetTimer()
			for b.Loop() {
				s := NewOrdered[int]()
				for _, r := range ranges {
					_ = s.Add(r)
				}
			}
		})
	}
}

func BenchmarkTreeRangeSet_Contains(b *testing.B) {
	for _, n := range []int{1e3, 1e4, 5e4} {
		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			s := NewOrdered[int]()
			for i := range n {
				r, _ := ClosedOpenOrdered(i*10, i*10+5)
				_ = s.Add(r)
			}
			b.ResetTimer()
			for b.Loop() {
				for i := range n {
					s.Contains(i*10 + 2)
				}
			}
		})
	}
}

func BenchmarkTreeRangeSet_RemoveSplit(b *testing.B) {
	for _, n := range []int{1e3, 1e4, 5e4} {
		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			splits := make([]Range[int], n)
			for i := range n {
				splits[i], _ = OpenOrdered(i*10+1, i*10+4)
			}
			b.ResetTimer()
			for b.Loop() {
				s := NewOrdered[int]()
				whole, _ := ClosedOrdered(0, n*10)
				_ = s.Add(whole)
				for _, split := range splits {
					s.Remove(split)
				}
			}
		})
	}
}

func BenchmarkComplementView_AsRanges(b *testing.B) {
	for _, n := range []int{1e3, 1e4, 5e4} {
		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			s := NewOrdered[int]()
			for i := range n {
				r, _ := ClosedOpenOrdered(i*10, i*10+5)
				_ = s.Add(r)
			}
			complement := s.Complement()
			b.ResetTimer()
			for b.Loop() {
				_ = complement.AsRanges()
			}
		})
	}
}

func BenchmarkSubRangeSetView_AsRanges(b *testing.B) {
	for _, n := range []int{1e3, 1e4, 5e4} {
		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			s := NewOrdered[int]()
			for i := range n {
				r, _ := ClosedOpenOrdered(i*10, i*10+5)
				_ = s.Add(r)
			}
			window, _ := ClosedOrdered(0, n*10/2)
			view, _ := s.SubRangeSet(window)
			b.ResetTimer()
			for b.Loop() {
				_ = view.AsRanges()
			}
		})
	}
}
