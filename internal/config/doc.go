// Package config provides the panel's own configuration.
//
// The multipliers themselves live in the mod's settings file (see package
// settings). This package covers everything around them: where that file is,
// which layout it uses, how the panel looks and where it logs.
//
// Configuration File:
//
//	scaler.yaml
//
//	settings_path: ue4ss/Mods/WuchangDamageScaler/dmg_mult.cfg
//	variant: multipliers
//	theme: wuchang
//	log_file: scaler.log
//	log_level: info
//	start_visible: true
//
// Environment Variable Support:
//
// Values can reference environment variables using $VAR or ${VAR} syntax.
// A .env file next to scaler.yaml is loaded first, so game installs can keep
// their paths there:
//
//	# .env
//	WUCHANG_DIR=/games/wuchang
//
//	# scaler.yaml
//	settings_path: ${WUCHANG_DIR}/ue4ss/Mods/WuchangDamageScaler/dmg_mult.cfg
//
// Example usage:
//
//	manager := config.NewManager("scaler.yaml")
//	if err := manager.Load(); err != nil {
//		log.Fatal(err)
//	}
//
//	cfg := manager.Get()
//	fmt.Println("Settings file:", cfg.SettingsPath)
//
//	// Update a setting
//	manager.Set("theme", "dark")
package config
