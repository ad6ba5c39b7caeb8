// Package logger provides logging for zlang CLI commands.
//
// Two kinds of logging live here. Logger prints human-oriented, colored
// messages for a single command run. Backend produces decred/slog subsystem
// loggers (STOR for the store, FLOW for the workflows) that the internal
// packages adopt through their UseLogger functions.
//
// # Verbosity Levels
//
// Logger output is controlled by two flags:
//
//   - --verbose: Shows info and warning messages
//   - --debug: Shows all messages including debug details and errors
//
// Without flags, only WarnfAlways output is shown.
//
// # Log Methods
//
//	Logger.Infof()           // Shown with --verbose or --debug
//	Logger.Debugf()          // Shown only with --debug
//	Logger.Warnf()           // Shown with --verbose or --debug
//	Logger.WarnfAlways()     // Always shown
//	Logger.Errorf()          // Shown with --debug
//	Logger.ErrorfAndReturn() // Errorf, then returns the error
//
// # Subsystem Logging
//
//	bknd, err := NewBackend(os.Stderr, "", "debug")
//	store.UseLogger(bknd.Logger(SubsysStore))
//
// Subsystems are silent unless a level is given.
package logger
