// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stable

const (
	xamlNS       = "Microsoft.UI.Xaml."
	controlsNS   = "Microsoft.UI.Xaml.Controls."
	primitivesNS = "Microsoft.UI.Xaml.Controls.Primitives."
	mediaNS      = "Microsoft.UI.Xaml.Media."
	markupNS     = "Microsoft.UI.Xaml.Markup."
)

// Stable type indexes. Append only.
const (
	TypeNone TypeIndex = iota
	TypeObject
	TypeString
	TypeBoolean
	TypeInt32
	TypeDouble
	TypeSystemType
	TypeDependencyObject
	TypeDependencyProperty
	TypeUIElement
	TypeFrameworkElement
	TypeControl
	TypeContentControl
	TypeButtonBase
	TypeButton
	TypeTextBlock
	TypeBorder
	TypePanel
	TypeGrid
	TypeStackPanel
	TypeUIElementCollection
	TypeResourceDictionary
	TypeStyle
	TypeSetterBase
	TypeSetter
	TypeSetterBaseCollection
	TypeBrush
	TypeSolidColorBrush
	TypeColor
	TypeThickness
	TypeHorizontalAlignment
	TypeVisibility
	TypeFrameworkTemplate
	TypeControlTemplate
	TypeVisualStateManager
	TypeVisualStateGroup
	TypeVisualStateGroupCollection
	TypeVisualState
	TypeVisualStateCollection
	TypeMarkupExtension
	TypeStaticResource
	TypeThemeResource
	TypeTemplateBinding
	TypeNullExtension
	TypeCustomResource
)

// Stable property indexes. Append only.
const (
	PropertyNone PropertyIndex = iota
	PropXName
	PropXKey
	PropXUid
	PropFrameworkElementName
	PropFrameworkElementResources
	PropFrameworkElementStyle
	PropFrameworkElementWidth
	PropFrameworkElementHeight
	PropFrameworkElementMargin
	PropFrameworkElementHorizontalAlignment
	PropUIElementVisibility
	PropControlForeground
	PropControlBackground
	PropControlTemplate
	PropContentControlContent
	PropTextBlockText
	PropBorderChild
	PropBorderBackground
	PropPanelChildren
	PropPanelBackground
	PropGridRow
	PropGridColumn
	PropStyleTargetType
	PropStyleSetters
	PropStyleBasedOn
	PropSetterProperty
	PropSetterValue
	PropSolidColorBrushColor
	PropVisualStateManagerVisualStateGroups
	PropVisualStateGroupStates
	PropStaticResourceResourceKey
	PropThemeResourceResourceKey
	PropCustomResourceResourceKey
	PropTemplateBindingProperty
)

// Stable event indexes. Append only.
const (
	EventNone EventIndex = iota
	EventUIElementTapped
	EventUIElementPointerPressed
	EventFrameworkElementLoaded
	EventButtonBaseClick
)

var typeTable = [...]TypeInfo{
	TypeObject:             {"System.Object", TypeNone, 0},
	TypeString:             {"System.String", TypeObject, 0},
	TypeBoolean:            {"System.Boolean", TypeObject, 0},
	TypeInt32:              {"System.Int32", TypeObject, 0},
	TypeDouble:             {"System.Double", TypeObject, 0},
	TypeSystemType:         {"System.Type", TypeObject, 0},
	TypeDependencyObject:   {xamlNS + "DependencyObject", TypeObject, 0},
	TypeDependencyProperty: {xamlNS + "DependencyProperty", TypeObject, 0},
	TypeUIElement:          {xamlNS + "UIElement", TypeDependencyObject, 0},
	TypeFrameworkElement:   {xamlNS + "FrameworkElement", TypeUIElement, 0},
	TypeControl:            {controlsNS + "Control", TypeFrameworkElement, 0},
	TypeContentControl:     {controlsNS + "ContentControl", TypeControl, 0},
	TypeButtonBase:         {primitivesNS + "ButtonBase", TypeContentControl, 0},
	TypeButton:             {controlsNS + "Button", TypeButtonBase, 0},
	TypeTextBlock:          {controlsNS + "TextBlock", TypeFrameworkElement, 0},
	TypeBorder:             {controlsNS + "Border", TypeFrameworkElement, 0},
	TypePanel:              {controlsNS + "Panel", TypeFrameworkElement, 0},
	TypeGrid:               {controlsNS + "Grid", TypePanel, 0},
	TypeStackPanel:         {controlsNS + "StackPanel", TypePanel, 0},

	TypeUIElementCollection:  {controlsNS + "UIElementCollection", TypeObject, TypeFlagsOf(TypeIsCollection)},
	TypeResourceDictionary:   {xamlNS + "ResourceDictionary", TypeDependencyObject, TypeFlagsOf(TypeIsDictionary)},
	TypeStyle:                {xamlNS + "Style", TypeDependencyObject, 0},
	TypeSetterBase:           {xamlNS + "SetterBase", TypeDependencyObject, 0},
	TypeSetter:               {xamlNS + "Setter", TypeSetterBase, 0},
	TypeSetterBaseCollection: {xamlNS + "SetterBaseCollection", TypeObject, TypeFlagsOf(TypeIsCollection)},
	TypeBrush:                {mediaNS + "Brush", TypeDependencyObject, 0},
	TypeSolidColorBrush:      {mediaNS + "SolidColorBrush", TypeBrush, 0},
	TypeColor:                {"Windows.UI.Color", TypeObject, 0},
	TypeThickness:            {xamlNS + "Thickness", TypeObject, 0},
	TypeHorizontalAlignment:  {xamlNS + "HorizontalAlignment", TypeObject, 0},
	TypeVisibility:           {xamlNS + "Visibility", TypeObject, 0},
	TypeFrameworkTemplate:    {xamlNS + "FrameworkTemplate", TypeDependencyObject, 0},
	TypeControlTemplate:      {controlsNS + "ControlTemplate", TypeFrameworkTemplate, 0},

	TypeVisualStateManager:         {xamlNS + "VisualStateManager", TypeDependencyObject, 0},
	TypeVisualStateGroup:           {xamlNS + "VisualStateGroup", TypeDependencyObject, 0},
	TypeVisualStateGroupCollection: {xamlNS + "VisualStateGroupCollection", TypeObject, TypeFlagsOf(TypeIsCollection)},
	TypeVisualState:                {xamlNS + "VisualState", TypeDependencyObject, 0},
	TypeVisualStateCollection:      {xamlNS + "VisualStateCollection", TypeObject, TypeFlagsOf(TypeIsCollection)},

	TypeMarkupExtension: {markupNS + "MarkupExtension", TypeObject, 0},
	TypeStaticResource:  {xamlNS + "StaticResource", TypeMarkupExtension, TypeFlagsOf(TypeIsMarkupExtension)},
	TypeThemeResource:   {xamlNS + "ThemeResource", TypeMarkupExtension, TypeFlagsOf(TypeIsMarkupExtension)},
	TypeTemplateBinding: {xamlNS + "TemplateBinding", TypeMarkupExtension, TypeFlagsOf(TypeIsMarkupExtension)},
	TypeNullExtension:   {xamlNS + "NullExtension", TypeMarkupExtension, TypeFlagsOf(TypeIsMarkupExtension)},
	TypeCustomResource:  {xamlNS + "CustomResource", TypeMarkupExtension, TypeFlagsOf(TypeIsMarkupExtension)},
}

var propertyTable = [...]PropertyInfo{
	PropXName: {"x:Name", TypeNone, TypeString, 0},
	PropXKey:  {"x:Key", TypeNone, TypeString, 0},
	PropXUid:  {"x:Uid", TypeNone, TypeString, 0},

	PropFrameworkElementName:                {xamlNS + "FrameworkElement.Name", TypeFrameworkElement, TypeString, 0},
	PropFrameworkElementResources:           {xamlNS + "FrameworkElement.Resources", TypeFrameworkElement, TypeResourceDictionary, 0},
	PropFrameworkElementStyle:               {xamlNS + "FrameworkElement.Style", TypeFrameworkElement, TypeStyle, 0},
	PropFrameworkElementWidth:               {xamlNS + "FrameworkElement.Width", TypeFrameworkElement, TypeDouble, 0},
	PropFrameworkElementHeight:              {xamlNS + "FrameworkElement.Height", TypeFrameworkElement, TypeDouble, 0},
	PropFrameworkElementMargin:              {xamlNS + "FrameworkElement.Margin", TypeFrameworkElement, TypeThickness, 0},
	PropFrameworkElementHorizontalAlignment: {xamlNS + "FrameworkElement.HorizontalAlignment", TypeFrameworkElement, TypeHorizontalAlignment, 0},
	PropUIElementVisibility:                 {xamlNS + "UIElement.Visibility", TypeUIElement, TypeVisibility, 0},

	PropControlForeground:     {controlsNS + "Control.Foreground", TypeControl, TypeBrush, 0},
	PropControlBackground:     {controlsNS + "Control.Background", TypeControl, TypeBrush, 0},
	PropControlTemplate:       {controlsNS + "Control.Template", TypeControl, TypeControlTemplate, 0},
	PropContentControlContent: {controlsNS + "ContentControl.Content", TypeContentControl, TypeObject, PropertyFlagsOf(PropertyIsVisualTree)},
	PropTextBlockText:         {controlsNS + "TextBlock.Text", TypeTextBlock, TypeString, 0},
	PropBorderChild:           {controlsNS + "Border.Child", TypeBorder, TypeUIElement, PropertyFlagsOf(PropertyIsVisualTree)},
	PropBorderBackground:      {controlsNS + "Border.Background", TypeBorder, TypeBrush, 0},
	PropPanelChildren:         {controlsNS + "Panel.Children", TypePanel, TypeUIElementCollection, PropertyFlagsOf(PropertyIsVisualTree)},
	PropPanelBackground:       {controlsNS + "Panel.Background", TypePanel, TypeBrush, 0},
	PropGridRow:               {controlsNS + "Grid.Row", TypeGrid, TypeInt32, PropertyFlagsOf(PropertyIsAttached)},
	PropGridColumn:            {controlsNS + "Grid.Column", TypeGrid, TypeInt32, PropertyFlagsOf(PropertyIsAttached)},

	PropStyleTargetType:      {xamlNS + "Style.TargetType", TypeStyle, TypeSystemType, 0},
	PropStyleSetters:         {xamlNS + "Style.Setters", TypeStyle, TypeSetterBaseCollection, 0},
	PropStyleBasedOn:         {xamlNS + "Style.BasedOn", TypeStyle, TypeStyle, 0},
	PropSetterProperty:       {xamlNS + "Setter.Property", TypeSetter, TypeDependencyProperty, 0},
	PropSetterValue:          {xamlNS + "Setter.Value", TypeSetter, TypeObject, 0},
	PropSolidColorBrushColor: {mediaNS + "SolidColorBrush.Color", TypeSolidColorBrush, TypeColor, 0},

	PropVisualStateManagerVisualStateGroups: {xamlNS + "VisualStateManager.VisualStateGroups", TypeVisualStateManager, TypeVisualStateGroupCollection, PropertyFlagsOf(PropertyIsAttached)},
	PropVisualStateGroupStates:              {xamlNS + "VisualStateGroup.States", TypeVisualStateGroup, TypeVisualStateCollection, 0},

	PropStaticResourceResourceKey: {xamlNS + "StaticResource.ResourceKey", TypeStaticResource, TypeString, 0},
	PropThemeResourceResourceKey:  {xamlNS + "ThemeResource.ResourceKey", TypeThemeResource, TypeString, 0},
	PropCustomResourceResourceKey: {xamlNS + "CustomResource.ResourceKey", TypeCustomResource, TypeString, 0},
	PropTemplateBindingProperty:   {xamlNS + "TemplateBinding.Property", TypeTemplateBinding, TypeString, 0},
}

var eventTable = [...]EventInfo{
	EventUIElementTapped:         {xamlNS + "UIElement.Tapped", TypeUIElement},
	EventUIElementPointerPressed: {xamlNS + "UIElement.PointerPressed", TypeUIElement},
	EventFrameworkElementLoaded:  {xamlNS + "FrameworkElement.Loaded", TypeFrameworkElement},
	EventButtonBaseClick:         {primitivesNS + "ButtonBase.Click", TypeButtonBase},
}
