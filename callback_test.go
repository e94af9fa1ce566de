package iterman_test

import (
	"strings"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/random"

	"github.com/netr/iterman"
)

func TestWithCallback(t *testing.T) {
	s := testcase.NewSpec(t)
	s.Parallel()

	s.When(`no hook is defined`, func(s *testcase.Spec) {
		s.Then(`it will execute iterator calls like it is not even there`, func(t *testcase.T) {
			expected := []int{1, 2, 3}
			i := iterman.WithCallback[int](iterman.Memory(expected), iterman.Callback[int]{})

			actually, err := iterman.Collect[int](i)
			t.Must.Nil(err)
			t.Must.Equal(expected, actually)
		})
	})

	s.When(`OnValue hook is given`, func(s *testcase.Spec) {
		s.Then(`the hook receives every consumed value in order`, func(t *testcase.T) {
			var persisted []string
			i := iterman.WithCallback[string](iterman.Memory([]string{"a", "b", "c"}), iterman.Callback[string]{
				OnValue: func(v string) error {
					persisted = append(persisted, v)
					return nil
				},
			})

			vs, err := iterman.Collect[string](i)
			t.Must.Nil(err)
			t.Must.Equal([]string{"a", "b", "c"}, vs)
			t.Must.Equal([]string{"a", "b", "c"}, persisted)
		})

		s.And(`the hook reports a failing outcome`, func(s *testcase.Spec) {
			s.Then(`the iteration stops and the outcome surfaces through Err`, func(t *testcase.T) {
				outcomeErr := random.New(random.CryptoSeed{}).Error()
				i := iterman.WithCallback[string](iterman.Memory([]string{"a", "b"}), iterman.Callback[string]{
					OnValue: func(v string) error { return outcomeErr },
				})

				t.Must.False(i.Next())
				t.Must.ErrorIs(outcomeErr, i.Err())
			})
		})
	})

	s.When(`OnClose hook is given`, func(s *testcase.Spec) {
		s.Then(`the hook is called after the wrapped list's own Close`, func(t *testcase.T) {
			var closeHook []string

			inner := iterman.WithCallback[int](iterman.Memory([]int{1, 2, 3}), iterman.Callback[int]{
				OnClose: func() error {
					closeHook = append(closeHook, `during`)
					return nil
				},
			})

			callbackErr := random.New(random.CryptoSeed{}).Error()
			i := iterman.WithCallback[int](inner, iterman.Callback[int]{
				OnClose: func() error {
					closeHook = append(closeHook, `after`)
					return callbackErr
				},
			})

			t.Must.ErrorIs(callbackErr, i.Close())
			t.Must.Equal([]string{`during`, `after`}, closeHook)
		})

		s.And(`both the wrapped Close and the hook fail`, func(s *testcase.Spec) {
			s.Then(`both errors are part of the returned error`, func(t *testcase.T) {
				hookErr := random.New(random.CryptoSeed{}).Error()

				rc := NewReadCloser(strings.NewReader("a\n"))
				t.Must.Nil(rc.Close()) // the list's own Close will fail with "already closed"

				i := iterman.WithCallback[string](iterman.Buffer(rc), iterman.Callback[string]{
					OnClose: func() error { return hookErr },
				})

				err := i.Close()
				t.Must.ErrorIs(hookErr, err)
				t.Must.Contain(err.Error(), `already closed`)
			})
		})
	})
}
