package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"mayafbx/internal/core/fbxprop"
	"mayafbx/internal/core/options"
	"mayafbx/internal/mel"
)

// HealthReport summarizes what the doctor command learned about the host.
type HealthReport struct {
	Connected     bool
	MayaVersion   int
	PluginLoaded  bool
	PluginVersion string
	ExportFields  int
	ImportFields  int
}

// Properties dumps the plug-in's property table from the host and keeps
// the entries for one direction.
func (s *PluginService) Properties(ctx context.Context, dir options.Direction) ([]mel.PropertyInfo, error) {
	sess, err := s.dialer.Dial(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reach host: %w", err)
	}
	defer sess.Close()

	if _, err := s.prepare(ctx, sess); err != nil {
		return nil, err
	}
	reply, err := sess.Run(ctx, options.PropertiesCommand)
	if err != nil {
		return nil, err
	}

	all := mel.ParsePropertyDump(reply)
	infos := make([]mel.PropertyInfo, 0, len(all))
	for _, info := range all {
		switch dir {
		case options.DirectionExport:
			if info.IsExport() {
				infos = append(infos, info)
			}
		case options.DirectionImport:
			if info.IsImport() {
				infos = append(infos, info)
			}
		default:
			infos = append(infos, info)
		}
	}
	s.logger.Debug("parsed property dump",
		zap.Int("total", len(all)), zap.Int("kept", len(infos)))
	return infos, nil
}

// CheckProperties compares the modeled property table for one direction
// against what the host actually reports and returns the differences.
func (s *PluginService) CheckProperties(ctx context.Context, dir options.Direction) ([]fbxprop.Finding, error) {
	infos, err := s.Properties(ctx, dir)
	if err != nil {
		return nil, err
	}
	var props []*fbxprop.Property
	switch dir {
	case options.DirectionImport:
		props = options.PropertiesOf(options.NewImportOptions())
	default:
		props = options.PropertiesOf(options.NewExportOptions())
	}
	return fbxprop.Diff(props, infos), nil
}

// CaptureOptions reads the plug-in's current settings into a fresh record,
// so the UI state an artist dialed in can be saved as a preset.
func (s *PluginService) CaptureOptions(ctx context.Context, dir options.Direction) (options.Record, error) {
	var r options.Record
	switch dir {
	case options.DirectionImport:
		r = options.NewImportOptions()
	case options.DirectionExport:
		r = options.NewExportOptions()
	default:
		return nil, fmt.Errorf("unknown direction %q", dir)
	}

	sess, err := s.dialer.Dial(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reach host: %w", err)
	}
	defer sess.Close()

	info, err := s.prepare(ctx, sess)
	if err != nil {
		return nil, err
	}

	captured := 0
	for _, f := range r.Fields() {
		if !f.Prop.AvailableIn(info.MayaVersion) {
			continue
		}
		reply, err := s.run(ctx, sess, f.Prop.QueryCommand())
		if err != nil {
			s.logger.Debug("query failed, keeping default",
				zap.String("field", f.Name), zap.Error(err))
			continue
		}
		if err := options.SetFieldText(r, f.Name, reply); err != nil {
			s.logger.Debug("unusable reply, keeping default",
				zap.String("field", f.Name), zap.String("reply", reply), zap.Error(err))
			continue
		}
		captured++
	}
	s.logger.Info("captured host options",
		zap.String("direction", dir.String()), zap.Int("fields", captured))
	return r, nil
}

// Doctor checks connectivity, the plug-in, and versions, and reports what
// it found. It never modifies host state beyond loading the plug-in.
func (s *PluginService) Doctor(ctx context.Context) (*HealthReport, error) {
	report := &HealthReport{
		ExportFields: len(options.NewExportOptions().Fields()),
		ImportFields: len(options.NewImportOptions().Fields()),
	}

	sess, err := s.dialer.Dial(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to reach host: %w", err)
	}
	defer sess.Close()
	report.Connected = true

	info, err := s.prepare(ctx, sess)
	if err != nil {
		return report, err
	}
	report.PluginLoaded = true
	report.MayaVersion = info.MayaVersion
	report.PluginVersion = info.PluginVersion
	return report, nil
}
