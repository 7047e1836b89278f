package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/liesim/internal/attitude"
	"github.com/san-kum/liesim/internal/config"
	"github.com/san-kum/liesim/internal/storage"
	"github.com/san-kum/liesim/internal/viz"
)

var errNoData = errors.New("run has no poses")

var sweepLevels int

func runCommands() []*cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate an attitude scenario and save it",
		Args:  cobra.NoArgs,
		RunE:  runScenario,
	}
	addScenarioFlags(runCmd)
	runCmd.Flags().StringVar(&stepper, "stepper", config.DefaultStepper, "stepper")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&series, "series", "angle", "angle, drift, x, y or z")

	replayCmd := &cobra.Command{
		Use:   "replay [run_id]",
		Short: "animate a run",
		Args:  cobra.ExactArgs(1),
		RunE:  replayRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default <run_id>.json)")

	svgCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a run's final attitude and a series plot as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVar(&series, "series", "angle", "angle, drift, x, y or z")

	compareCmd := &cobra.Command{
		Use:   "compare [stepper...]",
		Short: "run one scenario under several steppers",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareSteppers,
	}
	addScenarioFlags(compareCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "measure a stepper's convergence over halving timesteps",
		Args:  cobra.NoArgs,
		RunE:  sweepDt,
	}
	addScenarioFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&stepper, "stepper", config.DefaultStepper, "stepper")
	sweepCmd.Flags().IntVar(&sweepLevels, "levels", 5, "number of timesteps, halving from --dt")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "recover body rates from a run and find their dominant frequencies",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios and steppers",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive rotation explorer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(rotvec) != 3 {
				return fmt.Errorf("rotvec needs 3 components, got %d", len(rotvec))
			}
			return viz.RunExplorer(r3.Vec{X: rotvec[0], Y: rotvec[1], Z: rotvec[2]})
		},
	}
	exploreCmd.Flags().Float64SliceVar(&rotvec, "rotvec", []float64{0, 0, 0}, "initial rotation vector")

	return []*cobra.Command{runCmd, compareCmd, sweepCmd, listCmd, plotCmd, replayCmd, exportCmd, svgCmd, analyzeCmd, presetsCmd, exploreCmd}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a built-in scenario")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().Float64SliceVar(&rotvec, "rotvec", []float64{0, 0, 0}, "initial rotation vector")
	cmd.Flags().Float64SliceVar(&position, "pos", []float64{0, 0, 0}, "initial position")
	cmd.Flags().Float64SliceVar(&omega, "omega", []float64{0, 0, 0}, "body angular rate")
	cmd.Flags().Float64SliceVar(&velocity, "vel", []float64{0, 0, 0}, "body velocity")
}

// loadScenario resolves preset, then config file, then flags that were set
// explicitly on the command line.
func loadScenario(cmd *cobra.Command) (*config.Config, string, error) {
	cfg, name := config.DefaultConfig(), "custom"

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		name = preset
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		name = strings.TrimSuffix(filepath.Base(configFile), filepath.Ext(configFile))
	}

	flags := cmd.Flags()
	if flags.Changed("stepper") {
		cfg.Stepper = stepper
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("time") {
		cfg.Duration = duration
	}
	if flags.Changed("rotvec") {
		cfg.Init.RotVec = rotvec
	}
	if flags.Changed("pos") {
		cfg.Init.Position = position
	}
	if flags.Changed("omega") {
		cfg.Twist.Omega = omega
	}
	if flags.Changed("vel") {
		cfg.Twist.Velocity = velocity
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, name, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, name, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := attitude.NewRegistry()
	step, err := registry.GetStepper(cfg.Stepper)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, registry.ListSteppers())
	}

	sim := attitude.New(step, cfg.Profile())
	for _, m := range registry.DefaultMetrics() {
		sim.AddMetric(m)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running %s with %s...\n", name, step.Name())
	start := time.Now()

	result, err := sim.Run(ctx, cfg.InitialPose(), cfg.SimConfig())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(storage.RunMetadata{
		Scenario: name,
		Stepper:  step.Name(),
		Dt:       cfg.Dt,
		Duration: cfg.Duration,
	}, result)
	if err != nil {
		return err
	}

	final := result.Poses[len(result.Poses)-1]
	pos := final.Translation()

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Println(viz.KV("run id", runID))
	fmt.Println(viz.KV("steps", fmt.Sprint(result.StepsTaken)))
	fmt.Println(viz.KV("attitude", final.Rotation.String()))
	fmt.Println(viz.KV("position", viz.FormatVec([]float64{pos.X, pos.Y, pos.Z})))
	fmt.Println("\nmetrics:")
	for _, m := range registry.DefaultMetrics() {
		fmt.Printf("  %s: %.6g\n", m.Name(), result.Metrics[m.Name()])
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tDURATION\tDT\tSTEPPER\tANGLE")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%s\t%.4f\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Stepper,
			run.Metrics["rotation_angle"],
		)
	}
	return w.Flush()
}

// seriesOf extracts one scalar per pose.
func seriesOf(name string, poses []attitude.Pose) ([]float64, error) {
	var f func(attitude.Pose) float64
	switch name {
	case "angle":
		f = attitude.Pose.Angle
	case "drift":
		f = func(p attitude.Pose) float64 {
			return math.Abs(quat.Abs(p.Quaternion()) - 1)
		}
	case "x":
		f = func(p attitude.Pose) float64 { return p.Translation().X }
	case "y":
		f = func(p attitude.Pose) float64 { return p.Translation().Y }
	case "z":
		f = func(p attitude.Pose) float64 { return p.Translation().Z }
	default:
		return nil, fmt.Errorf("unknown series: %s (available: angle, drift, x, y, z)", name)
	}

	out := make([]float64, len(poses))
	for i, p := range poses {
		out[i] = f(p)
	}
	return out, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	poses, _, err := st.LoadPoses(runID)
	if err != nil {
		return err
	}
	if len(poses) == 0 {
		return errNoData
	}

	values, err := seriesOf(series, poses)
	if err != nil {
		return err
	}

	fmt.Println(viz.KV("run", meta.ID))
	fmt.Println(viz.KV("scenario", meta.Scenario))
	fmt.Println(viz.KV("stepper", meta.Stepper))
	fmt.Println()
	fmt.Println(asciigraph.Plot(downsample(values, 200),
		asciigraph.Height(15), asciigraph.Width(70), asciigraph.Caption(series+" vs step")))
	return nil
}

func downsample(v []float64, n int) []float64 {
	if len(v) <= n {
		return v
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = v[i*(len(v)-1)/(n-1)]
	}
	return out
}

func replayRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	poses, times, err := st.LoadPoses(runID)
	if err != nil {
		return err
	}
	return viz.RunReplay(meta.Scenario, poses, times)
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	poses, times, err := st.LoadPoses(runID)
	if err != nil {
		return err
	}

	path := outPath
	if path == "" {
		path = runID + ".json"
	}
	if err := storage.ExportJSON(path, *meta, poses, times); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", path)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tSTEPPER\tDT\tDURATION\tOMEGA")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%.4f\t%.1f\t%v\n", name, p.Stepper, p.Dt, p.Duration, p.Twist.Omega)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nsteppers: %s\n", strings.Join(attitude.NewRegistry().ListSteppers(), ", "))
	return nil
}

func compareSteppers(cmd *cobra.Command, args []string) error {
	cfg, name, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	registry := attitude.NewRegistry()
	steppers := make([]attitude.Stepper, 0, len(args))
	for _, a := range args {
		st, err := registry.GetStepper(a)
		if err != nil {
			return fmt.Errorf("%w (available: %v)", err, registry.ListSteppers())
		}
		steppers = append(steppers, st)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("comparing steppers for %s (dt=%.4f, duration=%.1fs)\n\n", name, cfg.Dt, cfg.Duration)
	runs := attitude.Compare(ctx, steppers, cfg.Profile(), cfg.InitialPose(), cfg.SimConfig(), registry.DefaultMetrics)

	var ref *attitude.Pose
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEPPER\tANGLE\tNORM DRIFT\tGAP\tTIME")
	for _, c := range runs {
		if c.Err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", c.Stepper, c.Err)
			continue
		}
		final := c.Result.Poses[len(c.Result.Poses)-1]
		if ref == nil {
			ref = &final
		}
		gap, err := attitude.AttitudeGap(*ref, final)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%.6f\t%.2e\t%.2e\t%.2fms\n",
			c.Stepper, c.Result.Metrics["rotation_angle"], c.Result.Metrics["norm_drift"], gap,
			float64(c.Elapsed.Microseconds())/1000)
	}
	return w.Flush()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]
	poses, _, err := storage.New(dataDir).LoadPoses(runID)
	if err != nil {
		return err
	}
	if len(poses) == 0 {
		return errNoData
	}
	values, err := seriesOf(series, poses)
	if err != nil {
		return err
	}

	cv := viz.NewCanvas(40, 20)
	viz.DrawAttitude(cv, poses[len(poses)-1].Rotation, viz.NewCamera())
	files := []struct{ path, svg string }{
		{runID + "_attitude.svg", viz.CanvasSVG(cv, 6, string(viz.CurrentTheme.Primary))},
		{runID + "_" + series + ".svg", viz.SeriesSVG(values, 800, 300, string(viz.CurrentTheme.Accent))},
	}
	for _, f := range files {
		if err := os.WriteFile(f.path, []byte(f.svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", f.path)
	}
	return nil
}

func sweepDt(cmd *cobra.Command, args []string) error {
	cfg, name, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	if sweepLevels < 2 {
		return fmt.Errorf("levels must be at least 2, got %d", sweepLevels)
	}
	st, err := attitude.NewRegistry().GetStepper(cfg.Stepper)
	if err != nil {
		return err
	}

	dts := make([]float64, sweepLevels)
	for i := range dts {
		dts[i] = cfg.Dt / math.Pow(2, float64(i))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	profile, p0 := cfg.Profile(), cfg.InitialPose()
	ref, err := attitude.Reference(ctx, profile, p0, cfg.Duration, dts[len(dts)-1]/16)
	if err != nil {
		return err
	}
	points, err := attitude.SweepDt(ctx, st, profile, p0, cfg.Duration, dts, ref)
	if err != nil {
		return err
	}

	fmt.Printf("sweeping %s for %s (duration=%.1fs)\n\n", st.Name(), name, cfg.Duration)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DT\tSTEPS\tGAP\tNORM DRIFT\tORDER")
	for _, p := range points {
		order := "-"
		if !math.IsNaN(p.Order) {
			order = fmt.Sprintf("%.2f", p.Order)
		}
		fmt.Fprintf(w, "%.6f\t%d\t%.3e\t%.2e\t%s\n", p.Dt, p.Steps, p.Gap, p.NormDrift, order)
	}
	return w.Flush()
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	poses, times, err := st.LoadPoses(runID)
	if err != nil {
		return err
	}
	rates, err := attitude.BodyRates(poses, times)
	if err != nil {
		return err
	}
	if len(rates) < 2 {
		return errNoData
	}

	axes := []struct {
		name string
		get  func(r3.Vec) float64
	}{
		{"wx", func(v r3.Vec) float64 { return v.X }},
		{"wy", func(v r3.Vec) float64 { return v.Y }},
		{"wz", func(v r3.Vec) float64 { return v.Z }},
	}

	fmt.Printf("body-rate spectrum of %s (%d samples, dt=%.4f)\n\n", meta.ID, len(rates), meta.Dt)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "AXIS\tMEAN\tPEAK HZ\tAMPLITUDE")
	for _, ax := range axes {
		samples := make([]float64, len(rates))
		for i, v := range rates {
			samples[i] = ax.get(v)
		}
		peak := attitude.DominantFrequency(samples, meta.Dt)
		mean := floats.Sum(samples) / float64(len(samples))
		fmt.Fprintf(w, "%s\t%.6f\t%.4f\t%.6f\n", ax.name, mean, peak.Frequency, peak.Amplitude)
	}
	return w.Flush()
}
