package Trees

import (
	"cmp"
	"slices"
	"testing"
)

var (
	bAddN uint32 = 1000000
	bQryN uint32 = bAddN / 2
)

func BenchmarkAdd0(b *testing.B) {
	for range b.N {
		tree := *New[int, int](uint32(0))
		for range bAddN {
			tree.Insert(rg.Int(), 0)
		}
	}
}
func BenchmarkAdd1(b *testing.B) {
	for range b.N {
		tree := *New[int, int](bAddN)
		for range bAddN {
			tree.Insert(rg.Int(), 0)
		}
	}
}
func create(b *testing.B) (*BSTree[int, int, uint32], []int) {
	b.Helper()
	all := make([]int, bAddN)
	tree := New[int, int](bAddN)
	for i := range all {
		all[i] = rg.Int()
		tree.Insert(all[i], i)
	}
	return tree, all
}
func BenchmarkDel(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree, all := create(b)
		b.StartTimer()
		for _, v := range all {
			tree.Erase(v)
		}
	}
}

func BenchmarkBalance(b *testing.B) {
	tree, _ := create(b)
	b.ResetTimer()
	for range b.N {
		tree.Balance()
	}
}

func BenchmarkFrom(b *testing.B) {
	es := make([]Entry[int, int], bAddN)
	for i := range es {
		es[i] = Entry[int, int]{i, i}
	}
	b.ResetTimer()
	for range b.N {
		From[int, int, uint32](cmp.Less[int], es)
	}
}

var sideEff Iterator[int, int, uint32]

func benchmarkQry(b *testing.B, balance bool) {
	for range b.N {
		b.StopTimer()
		tree, all := create(b)
		if balance {
			tree.Balance()
		}
		rg.Shuffle(int(bQryN), func(i, j int) {
			all[i], all[j] = all[j], all[i]
		})
		m := slices.Max(all[bQryN:])
		b.StartTimer()
		for _, v := range all[:bQryN] {
			sideEff = tree.Find(v)
		}
		for range bAddN - bQryN {
			sideEff = tree.Find(rg.Intn(m))
		}
	}
}

func BenchmarkQry(b *testing.B) {
	benchmarkQry(b, false)
}

func BenchmarkQryBalanced(b *testing.B) {
	benchmarkQry(b, true)
}

func BenchmarkIterate(b *testing.B) {
	tree, _ := create(b)
	b.ResetTimer()
	for range b.N {
		for it := tree.Begin(); !it.IsEnd(); it.Next() {
			sideEff = it
		}
	}
}
