// Package commands implements the langkit command tree.
//
//	langkit list                 print topics and their checks
//	langkit run [topic...]       run the catalogue (or the given topics)
//
// Settings come from the environment (and ./.env, or the file named by
// --env-file) first, flags second:
//
//	LANGKIT_ENV            development | production
//	LANGKIT_LOG_LEVEL      debug | info | warn | error
//	LANGKIT_LOG_FORMAT     text | json
//	LANGKIT_PARALLELISM    checks run at once (default GOMAXPROCS)
//	LANGKIT_REPORT_FORMAT  text | json | yaml
package commands
