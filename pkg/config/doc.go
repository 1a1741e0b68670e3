/*
Package config decides which files a crlf run looks at.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	   +---------------+---------------+
	   |               |               |
	+--+---+      +----+----+     +----+----+
	| JSON |      |  YAML   |     |   HCL   |
	+------+      +---------+     +---------+

🎯 Purpose:
- Holds the extension allow-list and the excluded folder names
- Locates the result index
- Loads overrides from a file and from CRLF_* environment variables

🔄 Flow:
1. Start from Default()
2. Overlay the config file, if one was given
3. Overlay the environment
4. Validate and normalize

🔍 Example:

	cfg, err := config.Load(ctx, "crlf.yaml")
	if err != nil {
		return err
	}
	if cfg.AllowsFile("Program.cs") && !cfg.ExcludesFolder("bin") {
		// process it
	}
*/
package config
