// Package domain contains the core model of auditmd: findings parsed from an
// audit report, their severities and team responses, and the line buffer a
// report is edited through.
//
// The domain does not touch the filesystem, YAML or the terminal. Infra and
// usecases map into and out of these types.
package domain
