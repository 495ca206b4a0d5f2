// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package route

// This file is the registration surface: one Route*/Unroute* pair per
// operation kind, mirroring the source library's fskit_route_<op> /
// fskit_unroute_<op> function pairs one-for-one rather than folding them
// behind a single call keyed by an operation-kind argument.

// RouteCreate registers h for the create operation kind, matched against
// pattern, run under discipline d. It returns a handle to later revoke
// the route with UnrouteCreate.
func (e *Engine[C]) RouteCreate(pattern string, h CreateHandler[C], d Discipline) (Handle, error) {
	return e.register(OpCreate, pattern, h, d)
}

// UnrouteCreate revokes a route previously returned by RouteCreate.
func (e *Engine[C]) UnrouteCreate(h Handle) error { return e.t.remove(OpCreate, h) }

// RouteMknod registers h for the mknod operation kind.
func (e *Engine[C]) RouteMknod(pattern string, h MknodHandler[C], d Discipline) (Handle, error) {
	return e.register(OpMknod, pattern, h, d)
}

// UnrouteMknod revokes a route previously returned by RouteMknod.
func (e *Engine[C]) UnrouteMknod(h Handle) error { return e.t.remove(OpMknod, h) }

// RouteMkdir registers h for the mkdir operation kind.
func (e *Engine[C]) RouteMkdir(pattern string, h MkdirHandler[C], d Discipline) (Handle, error) {
	return e.register(OpMkdir, pattern, h, d)
}

// UnrouteMkdir revokes a route previously returned by RouteMkdir.
func (e *Engine[C]) UnrouteMkdir(h Handle) error { return e.t.remove(OpMkdir, h) }

// RouteOpen registers h for the open operation kind, which also serves
// opendir.
func (e *Engine[C]) RouteOpen(pattern string, h OpenHandler[C], d Discipline) (Handle, error) {
	return e.register(OpOpen, pattern, h, d)
}

// UnrouteOpen revokes a route previously returned by RouteOpen.
func (e *Engine[C]) UnrouteOpen(h Handle) error { return e.t.remove(OpOpen, h) }

// RouteClose registers h for the close operation kind, which also serves
// closedir.
func (e *Engine[C]) RouteClose(pattern string, h CloseHandler[C], d Discipline) (Handle, error) {
	return e.register(OpClose, pattern, h, d)
}

// UnrouteClose revokes a route previously returned by RouteClose.
func (e *Engine[C]) UnrouteClose(h Handle) error { return e.t.remove(OpClose, h) }

// RouteReaddir registers h for the readdir operation kind.
func (e *Engine[C]) RouteReaddir(pattern string, h ReaddirHandler[C], d Discipline) (Handle, error) {
	return e.register(OpReaddir, pattern, h, d)
}

// UnrouteReaddir revokes a route previously returned by RouteReaddir.
func (e *Engine[C]) UnrouteReaddir(h Handle) error { return e.t.remove(OpReaddir, h) }

// RouteRead registers h for the read operation kind.
func (e *Engine[C]) RouteRead(pattern string, h IOHandler[C], d Discipline) (Handle, error) {
	return e.register(OpRead, pattern, h, d)
}

// UnrouteRead revokes a route previously returned by RouteRead.
func (e *Engine[C]) UnrouteRead(h Handle) error { return e.t.remove(OpRead, h) }

// RouteWrite registers h for the write operation kind.
func (e *Engine[C]) RouteWrite(pattern string, h IOHandler[C], d Discipline) (Handle, error) {
	return e.register(OpWrite, pattern, h, d)
}

// UnrouteWrite revokes a route previously returned by RouteWrite.
func (e *Engine[C]) UnrouteWrite(h Handle) error { return e.t.remove(OpWrite, h) }

// RouteTrunc registers h for the trunc operation kind.
func (e *Engine[C]) RouteTrunc(pattern string, h TruncHandler[C], d Discipline) (Handle, error) {
	return e.register(OpTrunc, pattern, h, d)
}

// UnrouteTrunc revokes a route previously returned by RouteTrunc.
func (e *Engine[C]) UnrouteTrunc(h Handle) error { return e.t.remove(OpTrunc, h) }

// RouteDetach registers h for the detach operation kind, which serves
// both unlink and rmdir.
func (e *Engine[C]) RouteDetach(pattern string, h DetachHandler[C], d Discipline) (Handle, error) {
	return e.register(OpDetach, pattern, h, d)
}

// UnrouteDetach revokes a route previously returned by RouteDetach.
func (e *Engine[C]) UnrouteDetach(h Handle) error { return e.t.remove(OpDetach, h) }

// RouteStat registers h for the stat operation kind.
func (e *Engine[C]) RouteStat(pattern string, h StatHandler[C], d Discipline) (Handle, error) {
	return e.register(OpStat, pattern, h, d)
}

// UnrouteStat revokes a route previously returned by RouteStat.
func (e *Engine[C]) UnrouteStat(h Handle) error { return e.t.remove(OpStat, h) }

// RouteSync registers h for the sync operation kind.
func (e *Engine[C]) RouteSync(pattern string, h SyncHandler[C], d Discipline) (Handle, error) {
	return e.register(OpSync, pattern, h, d)
}

// UnrouteSync revokes a route previously returned by RouteSync.
func (e *Engine[C]) UnrouteSync(h Handle) error { return e.t.remove(OpSync, h) }

// RouteRename registers h for the rename operation kind.
func (e *Engine[C]) RouteRename(pattern string, h RenameHandler[C], d Discipline) (Handle, error) {
	return e.register(OpRename, pattern, h, d)
}

// UnrouteRename revokes a route previously returned by RouteRename.
func (e *Engine[C]) UnrouteRename(h Handle) error { return e.t.remove(OpRename, h) }
