package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"mayafbx/internal/core/fbxprop"
	"mayafbx/internal/core/options"
	"mayafbx/internal/core/ports/host"
	"mayafbx/internal/mel"
)

// PluginService orchestrates FBX plug-in operations over a host session:
// validate locally, reset the plug-in to its factory preset, apply the
// record in order, invoke, and put the host back the way it was.
type PluginService struct {
	dialer  host.Dialer
	logger  *zap.Logger
	restore bool
}

// NewPluginService creates the service. When restore is set, export and
// import snapshot the plug-in state and reapply it after the operation, so
// a host shared with an artist keeps its UI state.
func NewPluginService(dialer host.Dialer, logger *zap.Logger, restore bool) *PluginService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PluginService{
		dialer:  dialer,
		logger:  logger,
		restore: restore,
	}
}

// ExportRequest describes one export operation.
type ExportRequest struct {
	// File is the destination .fbx path, in host terms.
	File string

	// Options configures the exporter; nil means factory defaults.
	Options *options.ExportOptions

	// Selection exports only the active selection instead of the scene.
	Selection bool

	// Takes splits the exported animation into named takes.
	Takes []options.Take
}

// ImportRequest describes one import operation.
type ImportRequest struct {
	// File is the .fbx file to load, in host terms.
	File string

	// Options configures the importer; nil means factory defaults.
	Options *options.ImportOptions

	// Take selects the take to load: 0 none, -1 the last in the file.
	Take *int
}

// Export writes the scene, or the current selection, to an FBX file. The
// record is validated before any host traffic; the plug-in is reset first
// so the result only depends on the record, never on call history.
func (s *PluginService) Export(ctx context.Context, req ExportRequest) error {
	start := time.Now()
	if req.Options == nil {
		req.Options = options.NewExportOptions()
	}

	assignments, err := options.Assignments(req.Options)
	if err != nil {
		return err
	}
	takeCmds, err := options.SplitTakeCommands(req.Takes)
	if err != nil {
		return err
	}
	invoke, err := options.ExportCommand(req.File, req.Selection)
	if err != nil {
		return err
	}

	sess, err := s.dialer.Dial(ctx)
	if err != nil {
		return fmt.Errorf("failed to reach host: %w", err)
	}
	defer sess.Close()

	info, err := s.prepare(ctx, sess)
	if err != nil {
		return err
	}

	if req.Selection {
		if err := s.checkSelection(ctx, sess); err != nil {
			return err
		}
	}

	if s.restore {
		snapshot := s.capture(ctx, sess, req.Options, info)
		defer s.reapply(ctx, sess, snapshot)
	}

	if _, err := s.run(ctx, sess, options.ResetExportCommand); err != nil {
		return err
	}
	if err := s.apply(ctx, sess, assignments, info); err != nil {
		return err
	}
	for _, cmd := range takeCmds {
		if _, err := s.run(ctx, sess, cmd); err != nil {
			return err
		}
	}

	if _, err := s.run(ctx, sess, invoke); err != nil {
		return err
	}

	s.logger.Info("exported fbx",
		zap.String("file", req.File),
		zap.Bool("selection", req.Selection),
		zap.Int("takes", len(req.Takes)),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// Import loads an FBX file into the scene under the record's merge mode.
func (s *PluginService) Import(ctx context.Context, req ImportRequest) error {
	start := time.Now()
	if req.Options == nil {
		req.Options = options.NewImportOptions()
	}

	assignments, err := options.Assignments(req.Options)
	if err != nil {
		return err
	}
	invoke, err := options.ImportCommand(req.File, req.Take)
	if err != nil {
		return err
	}

	sess, err := s.dialer.Dial(ctx)
	if err != nil {
		return fmt.Errorf("failed to reach host: %w", err)
	}
	defer sess.Close()

	info, err := s.prepare(ctx, sess)
	if err != nil {
		return err
	}

	if s.restore {
		snapshot := s.capture(ctx, sess, req.Options, info)
		defer s.reapply(ctx, sess, snapshot)
	}

	if _, err := s.run(ctx, sess, options.ResetImportCommand); err != nil {
		return err
	}
	if err := s.apply(ctx, sess, assignments, info); err != nil {
		return err
	}

	if _, err := s.run(ctx, sess, invoke); err != nil {
		return err
	}

	s.logger.Info("imported fbx",
		zap.String("file", req.File),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// ResetExport restores the plug-in's factory export preset on the host.
func (s *PluginService) ResetExport(ctx context.Context) error {
	return s.runAlone(ctx, options.ResetExportCommand)
}

// ResetImport restores the plug-in's factory import preset on the host.
func (s *PluginService) ResetImport(ctx context.Context) error {
	return s.runAlone(ctx, options.ResetImportCommand)
}

// LoadPresetFile loads a plug-in preset file from a path on the host into
// the export or import settings.
func (s *PluginService) LoadPresetFile(ctx context.Context, dir options.Direction, file string) error {
	cmd, err := options.LoadPresetCommand(dir, file)
	if err != nil {
		return err
	}
	return s.runAlone(ctx, cmd)
}

// runAlone dials a session for a single plug-in command.
func (s *PluginService) runAlone(ctx context.Context, command string) error {
	sess, err := s.dialer.Dial(ctx)
	if err != nil {
		return fmt.Errorf("failed to reach host: %w", err)
	}
	defer sess.Close()

	if _, err := s.prepare(ctx, sess); err != nil {
		return err
	}
	_, err = s.run(ctx, sess, command)
	return err
}

// prepare makes sure the FBX plug-in is loaded and reads the host
// versions. Availability windows are checked against the Maya version.
func (s *PluginService) prepare(ctx context.Context, sess host.Session) (host.Info, error) {
	var info host.Info

	reply, err := s.run(ctx, sess, "pluginInfo -q -loaded fbxmaya")
	if err != nil {
		return info, fmt.Errorf("failed to query fbx plug-in: %w", err)
	}
	loaded, err := mel.ParseBool(reply)
	if err != nil {
		return info, fmt.Errorf("unexpected pluginInfo reply: %w", err)
	}
	if !loaded {
		if _, err := s.run(ctx, sess, "loadPlugin fbxmaya"); err != nil {
			return info, fmt.Errorf("fbx plug-in unavailable: %w", err)
		}
		s.logger.Debug("loaded fbx plug-in")
	}

	if reply, err := s.run(ctx, sess, "about -version"); err == nil {
		if v, perr := mel.ParseVersion(reply); perr == nil {
			info.MayaVersion = v
		}
	}
	if reply, err := s.run(ctx, sess, "pluginInfo -q -version fbxmaya"); err == nil {
		info.PluginVersion = reply
	}
	return info, nil
}

// checkSelection fails a selection export before touching the plug-in when
// nothing is selected.
func (s *PluginService) checkSelection(ctx context.Context, sess host.Session) error {
	reply, err := s.run(ctx, sess, "size(`ls -sl`)")
	if err != nil {
		return fmt.Errorf("failed to query selection: %w", err)
	}
	n, err := mel.ParseInt(reply)
	if err != nil {
		return fmt.Errorf("unexpected selection reply: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("nothing selected")
	}
	return nil
}

// apply sends the assignments in order, resolving host-derived values and
// skipping properties the host's Maya version does not know.
func (s *PluginService) apply(ctx context.Context, sess host.Session, assignments []fbxprop.Assignment, info host.Info) error {
	for _, a := range assignments {
		if !a.Prop.AvailableIn(info.MayaVersion) {
			s.logger.Debug("property not available on host, skipping",
				zap.String("command", a.Prop.Command),
				zap.Int("maya_version", info.MayaVersion))
			continue
		}
		value := a.Value
		if a.Deferred() {
			resolved, err := s.resolve(ctx, sess, a.Resolve)
			if err != nil {
				return err
			}
			value = resolved
		}
		cmd, err := a.Prop.SetCommand(value)
		if err != nil {
			return fmt.Errorf("cannot serialize %s: %w", a.Prop.Command, err)
		}
		if _, err := s.run(ctx, sess, cmd); err != nil {
			return err
		}
	}
	return nil
}

// resolve answers a deferred assignment from the host scene.
func (s *PluginService) resolve(ctx context.Context, sess host.Session, src fbxprop.Source) (any, error) {
	switch src {
	case fbxprop.SourceTimelineStart:
		reply, err := s.run(ctx, sess, "playbackOptions -q -animationStartTime")
		if err != nil {
			return nil, err
		}
		return mel.ParseInt(reply)
	case fbxprop.SourceTimelineEnd:
		reply, err := s.run(ctx, sess, "playbackOptions -q -animationEndTime")
		if err != nil {
			return nil, err
		}
		return mel.ParseInt(reply)
	case fbxprop.SourceSceneUnit:
		reply, err := s.run(ctx, sess, "currentUnit -q -linear")
		if err != nil {
			return nil, err
		}
		unit, ok := options.ConvertUnitFromScene(reply)
		if !ok {
			return nil, fmt.Errorf("unsupported scene unit %q", reply)
		}
		return string(unit), nil
	case fbxprop.SourceSceneUpAxis:
		reply, err := s.run(ctx, sess, "upAxis -q -axis")
		if err != nil {
			return nil, err
		}
		axis, ok := options.UpAxisFromScene(reply)
		if !ok {
			return nil, fmt.Errorf("unsupported scene up axis %q", reply)
		}
		return string(axis), nil
	case fbxprop.SourcePluginFileVersion:
		reply, err := s.run(ctx, sess, "FBXExportFileVersion -q")
		if err != nil {
			return nil, err
		}
		return reply, nil
	}
	return nil, fmt.Errorf("unknown resolution source %d", src)
}

// capture reads the current value of every record property so the host can
// be put back after the operation. Properties that do not answer with a
// parseable value are left out.
func (s *PluginService) capture(ctx context.Context, sess host.Session, r options.Record, info host.Info) []fbxprop.Assignment {
	props := options.PropertiesOf(r)
	snapshot := make([]fbxprop.Assignment, 0, len(props))
	for _, p := range props {
		if !p.AvailableIn(info.MayaVersion) {
			continue
		}
		reply, err := s.run(ctx, sess, p.QueryCommand())
		if err != nil {
			s.logger.Debug("query failed, not restoring property",
				zap.String("command", p.Command), zap.Error(err))
			continue
		}
		v, err := p.ParseText(reply)
		if err == nil {
			err = p.Validate(v)
		}
		if err != nil {
			s.logger.Debug("unusable reply, not restoring property",
				zap.String("command", p.Command), zap.Error(err))
			continue
		}
		snapshot = append(snapshot, fbxprop.Assignment{Prop: p, Value: v})
	}
	return snapshot
}

// reapply writes a snapshot back. Failures are logged, not returned: the
// operation itself already finished.
func (s *PluginService) reapply(ctx context.Context, sess host.Session, snapshot []fbxprop.Assignment) {
	for _, a := range snapshot {
		cmd, err := a.Command()
		if err != nil {
			continue
		}
		if _, err := sess.Run(ctx, cmd); err != nil {
			s.logger.Warn("failed to restore property",
				zap.String("command", a.Prop.Command), zap.Error(err))
		}
	}
}

// run executes one MEL statement and normalizes the reply.
func (s *PluginService) run(ctx context.Context, sess host.Session, command string) (string, error) {
	s.logger.Debug("running mel command", zap.String("command", command))
	reply, err := sess.Run(ctx, command)
	if err != nil {
		return "", err
	}
	return mel.CleanResult(reply), nil
}
