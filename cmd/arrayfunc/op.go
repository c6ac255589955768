package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/m1griffin/arrayfunc-sub006/arrayfunc"
)

type opFlags struct {
	typeName   string
	maxLen     string
	mathErrors bool
	out        bool
}

func newOpCmd(name, short string, fn func(args ...any) error) *cobra.Command {
	var f opFlags
	cmd := &cobra.Command{
		Use:   name + " LEFT RIGHT",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := arrayfunc.ParseTypeCode(f.typeName)
			if err != nil {
				return err
			}
			opts, err := f.options(cmd)
			if err != nil {
				return err
			}
			left, err := parseOperand(code, args[0])
			if err != nil {
				return fmt.Errorf("LEFT: %w", err)
			}
			right, err := parseOperand(code, args[1])
			if err != nil {
				return fmt.Errorf("RIGHT: %w", err)
			}

			result := resultBuffer(left, right)
			callArgs := []any{left, right}
			if f.out {
				if result == nil {
					// Let the library report the shape error.
					result, _ = arrayfunc.MakeArray(code, 0)
				} else {
					result, err = arrayfunc.MakeArray(code, shortest(left, right))
					if err != nil {
						return err
					}
				}
				callArgs = append(callArgs, result)
			}
			callArgs = append(callArgs, lo.Map(opts, func(o arrayfunc.Option, _ int) any { return o })...)

			if err := fn(callArgs...); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().StringVarP(&f.typeName, "type", "t", "d", "Element type code (b,B,h,H,i,I,l,L,q,Q,f,d) or name")
	cmd.Flags().StringVar(&f.maxLen, "maxlen", "", "Process at most this many elements")
	cmd.Flags().BoolVar(&f.mathErrors, "matherrors", false, "Disable overflow and NaN/Inf checks")
	cmd.Flags().BoolVar(&f.out, "out", false, "Write into a fresh output array instead of in place")
	return cmd
}

// options routes the flags that were set through ParseOptions so the CLI
// validates them the same way keyword callers do.
func (f opFlags) options(cmd *cobra.Command) ([]arrayfunc.Option, error) {
	kwargs := map[string]any{}
	if cmd.Flags().Changed("maxlen") {
		kwargs["maxlen"] = f.maxLen
	}
	if cmd.Flags().Changed("matherrors") {
		kwargs["matherrors"] = f.mathErrors
	}
	return arrayfunc.ParseOptions(kwargs)
}

func parseOperand(code arrayfunc.TypeCode, s string) (any, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") && !strings.Contains(s, ",") {
		return arrayfunc.ParseScalar(code, s)
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	fields := lo.Map(strings.Split(s, ","), func(f string, _ int) string {
		return strings.TrimSpace(f)
	})
	fields = lo.Filter(fields, func(f string, _ int) bool { return f != "" })
	return arrayfunc.ParseArray(code, fields)
}

// resultBuffer returns the array a call without an output operand writes to.
func resultBuffer(left, right any) arrayfunc.Buffer {
	if b, ok := left.(arrayfunc.Buffer); ok {
		return b
	}
	if b, ok := right.(arrayfunc.Buffer); ok {
		return b
	}
	return nil
}

func shortest(operands ...any) int {
	bufs := lo.FilterMap(operands, func(v any, _ int) (arrayfunc.Buffer, bool) {
		b, ok := v.(arrayfunc.Buffer)
		return b, ok
	})
	return lo.Min(lo.Map(bufs, func(b arrayfunc.Buffer, _ int) int { return b.Len() }))
}
