// Package execshim transparently redirects process-replacement requests to a
// substitute executable path selected at run time.
//
// The functional surface is a single interception point: a trampoline that
// stands in for the exec-family primitive, reads the
// PITY_REPORT_CONTAINER_PATH environment variable fresh on every call, and
// either forwards the call unchanged or substitutes the configured path. The
// argument vector and environment travel through untouched in both cases,
// one diagnostic line is written to standard output per call, and failures
// of the underlying primitive are surfaced verbatim.
//
// # Basic Usage
//
//	// On success this call never returns: the process image is replaced.
//	err := execshim.Exec("/usr/bin/true", []string{"/usr/bin/true"}, nil)
//	log.Fatal(err)
//
// # With Hooks and Telemetry
//
//	registry := hooks.NewRegistry()
//	registry.Register(observability.NewAuditHook(auditLogger))
//
//	tr, _ := execshim.NewBuilder().
//	    WithHooks(registry).
//	    WithTelemetry(telemetry).
//	    Build()
//	err := tr.Exec(ctx, path, argv, envp)
//
// # Hook Registration
//
// How the trampoline becomes the active implementation of the primitive is
// platform-specific and outside this module's logic. The cmd/execshim binary
// provides the wrapper-substitution binding: installed in place of (or in
// front of) a utility, it routes the launch through the trampoline.
//
// # Package Structure
//
//   - execshim: Main entry point and convenience functions
//   - intercept: The interception trampoline and redirect decision
//   - hooks: Extension points around the substitution decision
//   - observability: OpenTelemetry metrics and audit logging
//   - config: Ambient configuration (never the redirect target)
//
// # Thread Safety
//
// The trampoline is stateless per call and safe for concurrent use. Each
// invocation reads process-wide environment state independently; a
// successful call supplants the entire process, so no coordination protects
// the lookup.
package execshim
