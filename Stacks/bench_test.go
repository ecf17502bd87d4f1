package Stacks

import (
	"testing"

	"github.com/emirpasic/gods/stacks/arraystack"
)

const (
	bPushN = 1 << 16
)

func BenchmarkArrayStack_PushPop(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s, _ := New[int](16)
		for j := 0; j < bPushN; j++ {
			s.Push(j)
		}
		for j := 0; j < bPushN; j++ {
			s.Pop()
		}
	}
}

func BenchmarkArrayStack_Fixed(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s, _ := NewFixed[int](bPushN)
		for j := 0; j < bPushN; j++ {
			s.Push(j)
		}
		for j := 0; j < bPushN; j++ {
			s.Pop()
		}
	}
}

func BenchmarkGodsArrayStack_PushPop(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := arraystack.New()
		for j := 0; j < bPushN; j++ {
			s.Push(j)
		}
		for j := 0; j < bPushN; j++ {
			s.Pop()
		}
	}
}
