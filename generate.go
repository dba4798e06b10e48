//go:generate gomarkdoc -e -f github -o README.md . --repository.url https://github.com/agentstation/casematch --repository.default-branch master --repository.path /

// Package casematch reconciles a report of case/contract numbers against a
// status feed of the same contracts, with session state, load hooks, and the
// two reconciliation views.
package casematch
