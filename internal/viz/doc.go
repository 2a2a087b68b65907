// Package viz is the display side of the simulator: terminal plots of
// compartment trajectories, phase-plane scatter plots, and a live
// bubbletea view of a running model. It consumes ode.Series values and
// never touches the integration itself.
package viz
