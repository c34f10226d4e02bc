package catalog

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrymomot/langkit/pkg/ownership"
)

func ownershipChecks() []Check {
	return []Check{
		{Topic: "ownership", Name: "move_out_of_slice", Run: func(context.Context) error {
			var v []string
			for i := 101; i < 106; i++ {
				v = append(v, strconv.Itoa(i))
			}
			fifth, ok := ownership.Pop(&v)
			second, err := ownership.SwapRemove(&v, 1)
			if err != nil {
				return err
			}
			third := ownership.Replace(&v[2], "substitute")
			return Expect(
				True("pop from non-empty", ok),
				Equal("pop", "105", fifth),
				Equal("swap remove", "102", second),
				Equal("replace", "103", third),
				Equal("remaining", []string{"101", "104", "substitute"}, v),
			)
		}},
		{Topic: "ownership", Name: "take_field", Run: func(context.Context) error {
			type person struct {
				Name  *string
				Birth int
			}
			name := "Palestrina"
			composers := []person{{Name: &name, Birth: 1525}}

			first := ownership.Take(&composers[0].Name)
			return Expect(
				True("taken name is Palestrina", first != nil && *first == "Palestrina"),
				True("field left empty", composers[0].Name == nil),
			)
		}},
		{Topic: "ownership", Name: "shared_handle", Run: func(context.Context) error {
			released := 0
			s := ownership.NewRc("shirataki", ownership.WithRelease(func(string) { released++ }))
			t := s.Clone()
			u := s.Clone()

			errs := []error{
				True("contains shira", strings.Contains(s.Value(), "shira")),
				Equal("index of taki", 5, strings.Index(t.Value(), "taki")),
				Equal("count", int64(3), u.Count()),
			}
			s.Release()
			t.Release()
			errs = append(errs, Equal("released while held", 0, released))
			u.Release()
			errs = append(errs, Equal("released after last holder", 1, released))
			return Expect(errs...)
		}},
		{Topic: "references", Name: "multi_level", Run: func(context.Context) error {
			type point struct{ X, Y int }
			p := point{X: 1000, Y: 769}
			r := &p
			rr := &r
			rrr := &rr
			return Equal("(**rrr).Y", 769, (**rrr).Y)
		}},
		{Topic: "references", Name: "compare", Run: func(context.Context) error {
			x, y := 10, 10
			rx, ry := &x, &y
			rrx, rry := &rx, &ry
			return Expect(
				True("*rrx <= *rry", ownership.DerefCompare(*rrx, *rry) <= 0),
				True("*rrx == *rry", ownership.DerefEqual(*rrx, *rry)),
				True("distinct pointers", rx != ry),
			)
		}},
	}
}
