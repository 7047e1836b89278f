package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/liesim/internal/lie"
	"github.com/san-kum/liesim/internal/rn"
	"github.com/san-kum/liesim/internal/so3"
	"github.com/san-kum/liesim/internal/viz"
)

var (
	errUnknownGroup   = errors.New("unknown group")
	errUnknownAlgebra = errors.New("unknown algebra")
	errArgCount       = errors.New("wrong number of values")
)

var groups = map[string]func() lie.Group{
	"quat":  func() lie.Group { return so3.StdQuat() },
	"dcm":   func() lie.Group { return so3.StdDcm() },
	"euler": func() lie.Group { return so3.StdEulerB321() },
	"r2":    func() lie.Group { return rn.Group2() },
	"r3":    func() lie.Group { return rn.Group3() },
}

var algebras = map[string]func() lie.Algebra{
	"so3": func() lie.Algebra { return so3.StdAlgebra() },
	"r2":  func() lie.Algebra { return rn.Algebra2() },
	"r3":  func() lie.Algebra { return rn.Algebra3() },
}

func groupByName(name string) (lie.Group, error) {
	fn, ok := groups[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: quat, dcm, euler, r2, r3)", errUnknownGroup, name)
	}
	return fn(), nil
}

func algebraByName(name string) (lie.Algebra, error) {
	fn, ok := algebras[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: so3, r2, r3)", errUnknownAlgebra, name)
	}
	return fn(), nil
}

func parseFloats(args []string) ([]float64, error) {
	vals := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		vals[i] = v
	}
	return vals, nil
}

// parseElements splits args into count group elements of g.
func parseElements(g lie.Group, args []string, count int) ([]lie.GroupElement, error) {
	vals, err := parseFloats(args)
	if err != nil {
		return nil, err
	}
	n := g.ParamLen()
	if len(vals) != n*count {
		return nil, fmt.Errorf("%w: %s needs %d per element, got %d for %d element(s)", errArgCount, g.Name(), n, len(vals), count)
	}
	out := make([]lie.GroupElement, count)
	for i := range out {
		out[i] = lie.NewGroupElement(g, vals[i*n:(i+1)*n])
	}
	return out, nil
}

func parseAlgebraElements(a lie.Algebra, args []string, count int) ([]lie.AlgebraElement, error) {
	vals, err := parseFloats(args)
	if err != nil {
		return nil, err
	}
	n := a.Dim()
	if len(vals) != n*count {
		return nil, fmt.Errorf("%w: %s needs %d per element, got %d for %d element(s)", errArgCount, a.Name(), n, len(vals), count)
	}
	out := make([]lie.AlgebraElement, count)
	for i := range out {
		out[i] = lie.NewAlgebraElement(a, vals[i*n:(i+1)*n])
	}
	return out, nil
}

func printMatrix(label string, m mat.Matrix) {
	fmt.Println(viz.Title.Render(label))
	fmt.Println(viz.FormatMatrix(m))
}

func algebraCommands() []*cobra.Command {
	expCmd := &cobra.Command{
		Use:   "exp [coords...]",
		Short: "exponential map from algebra coordinates",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runExp,
	}
	expCmd.Flags().StringVar(&groupName, "group", "quat", "target group")

	logCmd := &cobra.Command{
		Use:   "log [params...]",
		Short: "logarithm of a group element",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runLog,
	}
	logCmd.Flags().StringVar(&groupName, "group", "quat", "group of the element")

	composeCmd := &cobra.Command{
		Use:   "compose [a...] [b...]",
		Short: "group product a·b",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runCompose,
	}
	composeCmd.Flags().StringVar(&groupName, "group", "quat", "group of both elements")
	composeCmd.Flags().StringVar(&fallback, "fallback", "quat", "group used when the product is unsupported")

	convertCmd := &cobra.Command{
		Use:   "convert [params...]",
		Short: "re-express an element in another parameterization",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runConvert,
	}
	convertCmd.Flags().StringVar(&fromGroup, "from", "quat", "source group")
	convertCmd.Flags().StringVar(&toGroup, "to", "dcm", "target group")

	matrixCmd := &cobra.Command{
		Use:   "matrix [params...]",
		Short: "matrix form and adjoint of a group element",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runMatrix,
	}
	matrixCmd.Flags().StringVar(&groupName, "group", "quat", "group of the element")

	bracketCmd := &cobra.Command{
		Use:   "bracket [x...] [y...]",
		Short: "lie bracket [x, y]",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runBracket,
	}
	bracketCmd.Flags().StringVar(&algebra, "algebra", "so3", "algebra of both elements")

	return []*cobra.Command{expCmd, logCmd, composeCmd, convertCmd, matrixCmd, bracketCmd}
}

func runExp(cmd *cobra.Command, args []string) error {
	g, err := groupByName(groupName)
	if err != nil {
		return err
	}
	xs, err := parseAlgebraElements(g.Algebra(), args, 1)
	if err != nil {
		return err
	}

	h := g.Exp(xs[0])
	fmt.Println(viz.KV("exp", h.String()))
	printMatrix("matrix", g.ToMatrix(h))
	return nil
}

func runLog(cmd *cobra.Command, args []string) error {
	g, err := groupByName(groupName)
	if err != nil {
		return err
	}
	hs, err := parseElements(g, args, 1)
	if err != nil {
		return err
	}

	x, err := g.Log(hs[0])
	if err != nil {
		return err
	}
	fmt.Println(viz.KV("log", x.String()))
	fmt.Println(viz.KV("angle", fmt.Sprintf("%.9g", x.Norm())))
	return nil
}

func runCompose(cmd *cobra.Command, args []string) error {
	g, err := groupByName(groupName)
	if err != nil {
		return err
	}
	fb, err := groupByName(fallback)
	if err != nil {
		return err
	}
	if g.Algebra() != fb.Algebra() {
		return fmt.Errorf("%w: %s and fallback %s", lie.ErrAlgebraMismatch, g.Name(), fb.Name())
	}
	hs, err := parseElements(g, args, 2)
	if err != nil {
		return err
	}

	if _, err := g.Product(hs[0], hs[1]); errors.Is(err, lie.ErrUnsupported) {
		fmt.Println(viz.Subtle.Render(fmt.Sprintf("%s has no closed-form product; composing in %s", g.Name(), fb.Name())))
	}
	ab, err := lie.Compose(hs[0], hs[1], fb)
	if err != nil {
		return err
	}
	fmt.Println(viz.KV("a·b", ab.String()))
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	from, err := groupByName(fromGroup)
	if err != nil {
		return err
	}
	to, err := groupByName(toGroup)
	if err != nil {
		return err
	}
	if from.Algebra() != to.Algebra() {
		return fmt.Errorf("%w: %s and %s", lie.ErrAlgebraMismatch, from.Name(), to.Name())
	}
	hs, err := parseElements(from, args, 1)
	if err != nil {
		return err
	}

	out, err := lie.Convert(to, hs[0])
	if err != nil {
		return err
	}
	fmt.Println(viz.KV(strings.ToLower(to.Name()), out.String()))
	return nil
}

func runMatrix(cmd *cobra.Command, args []string) error {
	g, err := groupByName(groupName)
	if err != nil {
		return err
	}
	hs, err := parseElements(g, args, 1)
	if err != nil {
		return err
	}

	printMatrix("matrix", g.ToMatrix(hs[0]))
	ad, err := g.Adjoint(hs[0])
	switch {
	case errors.Is(err, lie.ErrUnsupported):
		fmt.Println(viz.Subtle.Render("adjoint: " + err.Error()))
	case err != nil:
		return err
	default:
		printMatrix("adjoint", ad)
	}
	return nil
}

func runBracket(cmd *cobra.Command, args []string) error {
	a, err := algebraByName(algebra)
	if err != nil {
		return err
	}
	xs, err := parseAlgebraElements(a, args, 2)
	if err != nil {
		return err
	}

	b := xs[0].Bracket(xs[1])
	fmt.Println(viz.KV("[x, y]", b.String()))
	printMatrix("wedge", a.Wedge(b))
	return nil
}
