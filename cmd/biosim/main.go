package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mvolek/biosim/internal/config"
	"github.com/mvolek/biosim/internal/experiment"
	"github.com/mvolek/biosim/internal/montecarlo"
	"github.com/mvolek/biosim/internal/ode"
	"github.com/mvolek/biosim/internal/storage"
	"github.com/mvolek/biosim/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	dt         float64
	tEnd       float64
	// Parameter overrides; each applies to whichever model is selected.
	beta     float64
	gamma    float64
	alpha    float64
	delta    float64
	rho      float64
	compRate float64
	s0       float64
	i0       float64
	r0       float64
	z0       float64
	prey0    float64
	pred0    float64
	comp0    float64
	// Phase plot axes
	xAxis int
	yAxis int
	// Live view
	frameRate int
	// Plot mode
	combined bool
	// Monte Carlo
	samples int
	seed    int64
	workers int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "biosim",
		Short: "coupled-ODE simulation lab: epidemics, population dynamics, zombies",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".biosim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "run a simulation and store the series",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addModelFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot compartment trajectories of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().BoolVar(&combined, "combined", false, "all compartments on one chart")

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase-plane plot of two compartments",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().IntVar(&xAxis, "x-axis", 0, "compartment index for x-axis")
	phaseCmd.Flags().IntVar(&yAxis, "y-axis", 1, "compartment index for y-axis")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run series to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export full run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "watch a simulation advance in real time",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addModelFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	compareDtCmd := &cobra.Command{
		Use:   "compare-dt [model] [dt1] [dt2] ...",
		Short: "run the same model at several step sizes",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareDt,
	}
	compareDtCmd.Flags().Float64Var(&tEnd, "t-end", 0, "end time (overrides config)")
	compareDtCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	compareDtCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	piCmd := &cobra.Command{
		Use:   "pi",
		Short: "estimate pi by Monte Carlo sampling",
		RunE:  estimatePi,
	}
	piCmd.Flags().IntVar(&samples, "samples", 1_000_000, "number of samples")
	piCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	piCmd.Flags().IntVar(&workers, "workers", 0, "worker count (0 = NumCPU)")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, phaseCmd, exportCmd,
		exportCSVCmd, exportJSONCmd, liveCmd, presetsCmd, compareDtCmd, piCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&tEnd, "t-end", config.DefaultTEnd, "end time")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Float64Var(&beta, "beta", 0, "infection/predation rate")
	cmd.Flags().Float64Var(&gamma, "gamma", 0, "recovery/death rate")
	cmd.Flags().Float64Var(&alpha, "alpha", 0, "growth/destruction rate")
	cmd.Flags().Float64Var(&delta, "delta", 0, "predator growth rate (lotka_volterra)")
	cmd.Flags().Float64Var(&rho, "rho", 0, "resurrection rate (zombie)")
	cmd.Flags().Float64Var(&compRate, "comp-rate", 0, "competitor growth rate (lotka_volterra)")
	cmd.Flags().Float64Var(&s0, "s0", 0, "initial susceptible/survivors")
	cmd.Flags().Float64Var(&i0, "i0", 0, "initial infected (sir)")
	cmd.Flags().Float64Var(&r0, "r0", 0, "initial recovered/removed")
	cmd.Flags().Float64Var(&z0, "z0", 0, "initial zombies (zombie)")
	cmd.Flags().Float64Var(&prey0, "prey0", 0, "initial prey (lotka_volterra)")
	cmd.Flags().Float64Var(&pred0, "pred0", 0, "initial predators (lotka_volterra)")
	cmd.Flags().Float64Var(&comp0, "comp0", 0, "initial competitors (lotka_volterra)")
}

// buildConfig resolves the effective configuration for a model with the
// teacher precedence: flags > config file > preset > defaults.
func buildConfig(cmd *cobra.Command, model string) (*config.Config, error) {
	cfg := config.Default()
	cfg.Model = model

	if preset != "" {
		p := config.GetPreset(model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *loaded
		cfg.Model = model
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("t-end") {
		cfg.TEnd = tEnd
	}
	applyParamOverrides(cmd, cfg)

	return cfg, nil
}

func applyParamOverrides(cmd *cobra.Command, cfg *config.Config) {
	set := func(name string, dst *float64, v float64) {
		if cmd.Flags().Changed(name) {
			*dst = v
		}
	}

	switch cfg.Model {
	case "sir":
		set("beta", &cfg.SIR.Beta, beta)
		set("gamma", &cfg.SIR.Gamma, gamma)
		set("s0", &cfg.SIR.S0, s0)
		set("i0", &cfg.SIR.I0, i0)
		set("r0", &cfg.SIR.R0, r0)
	case "lotka_volterra":
		set("alpha", &cfg.LotkaVolterra.Alpha, alpha)
		set("beta", &cfg.LotkaVolterra.Beta, beta)
		set("delta", &cfg.LotkaVolterra.Delta, delta)
		set("gamma", &cfg.LotkaVolterra.Gamma, gamma)
		set("comp-rate", &cfg.LotkaVolterra.CompRate, compRate)
		set("prey0", &cfg.LotkaVolterra.Prey0, prey0)
		set("pred0", &cfg.LotkaVolterra.Pred0, pred0)
		set("comp0", &cfg.LotkaVolterra.Comp0, comp0)
	case "zombie":
		set("beta", &cfg.Zombie.Beta, beta)
		set("alpha", &cfg.Zombie.Alpha, alpha)
		set("rho", &cfg.Zombie.Rho, rho)
		set("s0", &cfg.Zombie.S0, s0)
		set("z0", &cfg.Zombie.Z0, z0)
		set("r0", &cfg.Zombie.R0, r0)
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	model, err := registry.Build(cfg)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %s simulation...\n", cfg.Model)

	exp := experiment.New(cfg, model)
	series, elapsed, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	var params map[string]float64
	if c, ok := model.(ode.Configurable); ok {
		params = c.Params()
	}

	runID, err := st.Save(cfg.Model, cfg.Dt, cfg.TEnd, params, model.Labels(), series)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", series.Len())
	fmt.Println("\nfinal state:")
	final := series.Final()
	for i, label := range model.Labels() {
		fmt.Printf("  %s: %.4f\n", label, final[i])
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tT_END\tDT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.4f\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.TEnd,
			run.Dt,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s\n", meta.Model)
	fmt.Printf("samples: %d\n\n", series.Len())

	if combined {
		fmt.Println(viz.PlotCombined(series, meta.Labels))
	} else {
		fmt.Print(viz.PlotSeries(series, meta.Labels))
	}
	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("phase plane: %s\n", meta.ID)
	fmt.Printf("x-axis: %s, y-axis: %s\n\n", compartmentName(meta.Labels, xAxis), compartmentName(meta.Labels, yAxis))

	out, err := viz.PhasePlot(series, xAxis, yAxis)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func compartmentName(labels []string, i int) string {
	if i >= 0 && i < len(labels) {
		return labels[i]
	}
	return fmt.Sprintf("x%d", i)
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := append([]string{"time"}, meta.Labels...)
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range series.States {
		row := []string{strconv.FormatFloat(series.Times[i], 'f', 6, 64)}
		for _, val := range series.States[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, series)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	model, err := registry.Build(cfg)
	if err != nil {
		return err
	}

	live, err := viz.NewLive(model, cfg.Dt, cfg.Model, frameRate)
	if err != nil {
		return err
	}

	p := tea.NewProgram(live)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func compareDt(cmd *cobra.Command, args []string) error {
	model := args[0]
	dts := make([]float64, 0, len(args)-1)
	for _, a := range args[1:] {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("invalid dt %q: %w", a, err)
		}
		dts = append(dts, v)
	}

	cfg, err := buildConfig(cmd, model)
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()

	fmt.Printf("comparing step sizes for %s (t_end=%.1f)\n\n", model, cfg.TEnd)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DT\tSTEPS\tFINAL\tTIME")

	for _, d := range dts {
		runCfg := *cfg
		runCfg.Dt = d

		m, err := registry.Build(&runCfg)
		if err != nil {
			fmt.Fprintf(w, "%.4f\terror: %v\n", d, err)
			continue
		}

		start := time.Now()
		series, err := m.Simulate(runCfg.TEnd)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(w, "%.4f\terror: %v\n", d, err)
			continue
		}

		fmt.Fprintf(w, "%.4f\t%d\t%.4f\t%v\n", d, series.Len(), series.Final()[0], elapsed)
	}

	return w.Flush()
}

func estimatePi(cmd *cobra.Command, args []string) error {
	est := montecarlo.New(samples, seed)
	if workers > 0 {
		est.Workers = workers
	}

	start := time.Now()
	pi, err := est.Estimate(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("pi ≈ %.6f (%d samples, %v)\n", pi, samples, time.Since(start))
	return nil
}
