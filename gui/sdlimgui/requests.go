// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package sdlimgui

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/userinput"
)

type featureRequest struct {
	request gui.FeatureReq
	args    []gui.FeatureReqData
	get     bool
}

type featureResult struct {
	data gui.FeatureReqData
	err  error
}

// SetFeature implements gui.GUI interface.
//
// MUST NOT be called from the #mainthread.
func (img *SdlImgui) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	img.featureReq <- featureRequest{request: request, args: args}
	return (<-img.featureRes).err
}

// GetFeature implements gui.GUI interface.
//
// MUST NOT be called from the #mainthread.
func (img *SdlImgui) GetFeature(request gui.FeatureReq) (gui.FeatureReqData, error) {
	img.featureReq <- featureRequest{request: request, get: true}
	res := <-img.featureRes
	return res.data, res.err
}

func (img *SdlImgui) serviceFeatureRequests(request featureRequest) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			img.featureRes <- featureResult{err: curated.Errorf("sdlimgui: panic in feature request (%v)", r)}
		}
	}()

	if request.get {
		res := featureResult{}
		switch request.request {
		case gui.ReqSetScale:
			res.data = img.scale
		case gui.ReqState:
			res.data = img.state
		case gui.ReqSetROMName:
			res.data = img.romName
		case gui.ReqSetPrefsSummary:
			res.data = img.prefsSummary
		case gui.ReqSetSounding:
			res.data = img.sounding
		default:
			res.err = curated.Errorf(gui.UnsupportedGuiFeature, request.request)
		}
		img.featureRes <- res
		return
	}

	var err error

	switch request.request {
	case gui.ReqSetEventChan:
		img.events = request.args[0].(chan userinput.Event)

	case gui.ReqSetVisibility:
		img.showWindow(request.args[0].(bool))

	case gui.ReqSetScale:
		img.setScale(request.args[0].(float32))

	case gui.ReqState:
		img.state = request.args[0].(govern.State)

	case gui.ReqSetROMName:
		img.romName = request.args[0].(string)

	case gui.ReqSetPrefsSummary:
		img.prefsSummary = request.args[0].(string)

	case gui.ReqSetSounding:
		img.sounding = request.args[0].(bool)

	default:
		err = curated.Errorf(gui.UnsupportedGuiFeature, request.request)
	}

	img.featureRes <- featureResult{err: err}
}
